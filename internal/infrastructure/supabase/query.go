package supabase

// opKind etiqueta la operación que ejecutará el cliente. Cada variante usa
// solo los campos del Query que le corresponden.
type opKind int

const (
	opSelect opKind = iota
	opInsert
	opDelete
	opUpdate
	opRPC
)

// Query describe una operación contra una colección remota: un FilterSet más,
// a lo sumo, una operación de escritura o RPC pendiente. Los métodos de
// configuración mutan y devuelven el mismo builder para encadenar.
//
// Si se configuran varias operaciones sobre el mismo builder, resolve() las
// resuelve con precedencia fija: RPC > insert > delete > update > select.
type Query struct {
	table string
	fs    FilterSet

	insertData any
	updateData any
	deleteFlag bool
	rpcName    string
	rpcParams  any
}

// Table crea un builder para la colección indicada. Por defecto la operación
// es la lectura (select *).
func Table(name string) *Query {
	return &Query{table: name}
}

// RPC crea un builder para invocar la función remota `name` con `params`
// como cuerpo JSON.
func RPC(name string, params any) *Query {
	if params == nil {
		params = map[string]any{}
	}
	return &Query{rpcName: name, rpcParams: params}
}

// Select restringe las columnas devueltas.
func (q *Query) Select(cols ...string) *Query {
	q.fs.selectCols = cols
	return q
}

// Eq añade el filtro col = valor.
func (q *Query) Eq(col string, valor any) *Query {
	q.fs.setFiltro(col, OpEq, valor)
	return q
}

// Neq añade el filtro col != valor.
func (q *Query) Neq(col string, valor any) *Query {
	q.fs.setFiltro(col, OpNeq, valor)
	return q
}

// Gt añade el filtro col > valor.
func (q *Query) Gt(col string, valor any) *Query {
	q.fs.setFiltro(col, OpGt, valor)
	return q
}

// Gte añade el filtro col >= valor.
func (q *Query) Gte(col string, valor any) *Query {
	q.fs.setFiltro(col, OpGte, valor)
	return q
}

// Lt añade el filtro col < valor.
func (q *Query) Lt(col string, valor any) *Query {
	q.fs.setFiltro(col, OpLt, valor)
	return q
}

// Lte añade el filtro col <= valor.
func (q *Query) Lte(col string, valor any) *Query {
	q.fs.setFiltro(col, OpLte, valor)
	return q
}

// Order ordena por la columna ascendente.
func (q *Query) Order(col string) *Query {
	q.fs.orderCol, q.fs.orderDesc = col, false
	return q
}

// OrderDesc ordena por la columna descendente.
func (q *Query) OrderDesc(col string) *Query {
	q.fs.orderCol, q.fs.orderDesc = col, true
	return q
}

// Limit limita el número de filas devueltas.
func (q *Query) Limit(n int) *Query {
	q.fs.limite = n
	return q
}

// Single marca que se espera exactamente una fila; el resultado desenvuelve
// el primer elemento de la secuencia.
func (q *Query) Single() *Query {
	q.fs.single = true
	return q
}

// Insert fija el payload de inserción (objeto o slice de objetos).
func (q *Query) Insert(data any) *Query {
	q.insertData = data
	return q
}

// Update fija el payload de actualización parcial (solo campos cambiados).
func (q *Query) Update(data any) *Query {
	q.updateData = data
	return q
}

// Delete marca la operación de borrado sobre las filas filtradas.
func (q *Query) Delete() *Query {
	q.deleteFlag = true
	return q
}

// resolve decide la operación efectiva. La precedencia es fija y se comprueba
// en este orden exacto: RPC, insert, delete, update y, en ausencia de todas,
// lectura.
func (q *Query) resolve() opKind {
	switch {
	case q.rpcName != "":
		return opRPC
	case q.insertData != nil:
		return opInsert
	case q.deleteFlag:
		return opDelete
	case q.updateData != nil:
		return opUpdate
	default:
		return opSelect
	}
}
