package supabase

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Operadores de filtro soportados por el backend PostgREST.
// Se serializan como `{col}={op}.{valor}` en el query string.
const (
	OpEq  = "eq"
	OpNeq = "neq"
	OpGt  = "gt"
	OpGte = "gte"
	OpLt  = "lt"
	OpLte = "lte"
)

type filtro struct {
	op    string
	valor string
}

// FilterSet acumula predicados por columna, orden, límite y la intención de
// fila única. Es un objeto de valor: no toca la red. Un segundo filtro sobre
// la misma columna reemplaza al anterior.
type FilterSet struct {
	selectCols []string
	filtros    map[string]filtro
	orderCol   string
	orderDesc  bool
	limite     int
	single     bool
}

func (f *FilterSet) setFiltro(col, op string, valor any) {
	if f.filtros == nil {
		f.filtros = make(map[string]filtro)
	}
	f.filtros[col] = filtro{op: op, valor: formatValor(valor)}
}

// Single indica si la consulta espera exactamente una fila.
func (f *FilterSet) Single() bool { return f.single }

// Encode serializa el FilterSet al query string de PostgREST:
// select={cols}&{col}={op}.{valor}&order={col}.{asc|desc}&limit={n}.
// Las columnas filtradas se emiten en orden alfabético para que la salida
// sea determinista; el backend las combina con AND.
func (f *FilterSet) Encode() string {
	var sb strings.Builder

	cols := "*"
	if len(f.selectCols) > 0 {
		cols = strings.Join(f.selectCols, ",")
	}
	sb.WriteString("select=" + cols)

	claves := make([]string, 0, len(f.filtros))
	for col := range f.filtros {
		claves = append(claves, col)
	}
	sort.Strings(claves)
	for _, col := range claves {
		ft := f.filtros[col]
		sb.WriteString("&" + col + "=" + ft.op + "." + url.QueryEscape(ft.valor))
	}

	if f.orderCol != "" {
		dir := "asc"
		if f.orderDesc {
			dir = "desc"
		}
		sb.WriteString("&order=" + f.orderCol + "." + dir)
	}

	if f.limite > 0 {
		sb.WriteString(fmt.Sprintf("&limit=%d", f.limite))
	}

	return sb.String()
}

// formatValor normaliza el valor de un filtro a su representación de texto.
// fmt.Stringer cubre decimal.Decimal y similares.
func formatValor(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
