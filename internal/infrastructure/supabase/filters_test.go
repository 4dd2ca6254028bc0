package supabase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEncode_PorDefectoSelectTodo(t *testing.T) {
	q := Table("articulo")
	assert.Equal(t, "select=*", q.fs.Encode())
}

func TestEncode_ColumnasExplicitas(t *testing.T) {
	q := Table("articulo").Select("idarticulo", "nombre", "stock")
	assert.Equal(t, "select=idarticulo,nombre,stock", q.fs.Encode())
}

func TestEncode_UnParPorColumna_GanaElUltimoOperador(t *testing.T) {
	// Dos filtros sobre la misma columna: solo debe quedar el último.
	q := Table("articulo").
		Gt("stock", 0).
		Gte("stock", 5)

	assert.Equal(t, "select=*&stock=gte.5", q.fs.Encode())
}

func TestEncode_VariasColumnasEnOrdenAlfabetico(t *testing.T) {
	q := Table("articulo").
		Eq("estado", "activo").
		Gt("stock", 0)

	assert.Equal(t, "select=*&estado=eq.activo&stock=gt.0", q.fs.Encode())
}

func TestEncode_OrdenYLimite(t *testing.T) {
	asc := Table("venta").Order("fecha_hora").Limit(20)
	assert.Equal(t, "select=*&order=fecha_hora.asc&limit=20", asc.fs.Encode())

	desc := Table("venta").OrderDesc("idventa")
	assert.Equal(t, "select=*&order=idventa.desc", desc.fs.Encode())
}

func TestEncode_EscapaValoresConEspacios(t *testing.T) {
	q := Table("venta").Gte("fecha_hora", "2024-01-01 00:00:00")
	assert.Equal(t, "select=*&fecha_hora=gte.2024-01-01+00%3A00%3A00", q.fs.Encode())
}

func TestEncode_ValoresDecimal(t *testing.T) {
	q := Table("articulo").Lte("precio_venta", decimal.NewFromFloat(12.50))
	assert.Equal(t, "select=*&precio_venta=lte.12.5", q.fs.Encode())
}

func TestResolve_PrecedenciaFija(t *testing.T) {
	casos := []struct {
		nombre   string
		q        *Query
		esperado opKind
	}{
		{"sin operacion es lectura", Table("articulo"), opSelect},
		{"insert", Table("articulo").Insert(map[string]any{"codigo": "A1"}), opInsert},
		{"update", Table("articulo").Eq("idarticulo", 1).Update(map[string]any{"stock": 3}), opUpdate},
		{"delete", Table("articulo").Eq("idarticulo", 1).Delete(), opDelete},
		{"rpc gana a insert", RPC("exec_sql", nil).Insert(map[string]any{"x": 1}), opRPC},
		{"insert gana a update y delete", Table("articulo").Update(map[string]any{"a": 1}).Delete().Insert(map[string]any{"b": 2}), opInsert},
		{"delete gana a update", Table("articulo").Update(map[string]any{"a": 1}).Delete(), opDelete},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, c.q.resolve())
		})
	}
}

func TestResult_FilaUnicaSinFilas(t *testing.T) {
	r := &Result{raw: []byte(`[]`), single: true}

	var dest map[string]any
	err := r.Decode(&dest)
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestResult_FilaUnicaDesenvuelvePrimerElemento(t *testing.T) {
	r := &Result{raw: []byte(`[{"stock": 8}, {"stock": 99}]`), single: true}

	var dest struct {
		Stock int `json:"stock"`
	}
	assert.NoError(t, r.Decode(&dest))
	assert.Equal(t, 8, dest.Stock)
}

func TestResult_Count(t *testing.T) {
	casos := []struct {
		raw      string
		esperado int
	}{
		{`[]`, 0},
		{``, 0},
		{`null`, 0},
		{`[{"a":1}]`, 1},
		{`[{"a":1},{"a":2}]`, 2},
		{`{"a":1}`, 1},
	}
	for _, c := range casos {
		r := &Result{raw: []byte(c.raw)}
		n, err := r.Count()
		assert.NoError(t, err)
		assert.Equal(t, c.esperado, n, "raw=%s", c.raw)
	}
}
