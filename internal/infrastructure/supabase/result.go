package supabase

import (
	"bytes"
	"encoding/json"
)

// Result envuelve el payload decodificado de una operación: una secuencia de
// registros, un registro único o nada. El desenvolvimiento de lista a fila
// única sigue la intención Single() del Query que lo produjo.
type Result struct {
	raw    json.RawMessage
	single bool
}

// Raw devuelve el cuerpo JSON sin decodificar.
func (r *Result) Raw() json.RawMessage { return r.raw }

// Empty informa si el payload no trae registros ([] , null o vacío).
func (r *Result) Empty() bool {
	trimmed := bytes.TrimSpace(r.raw)
	return len(trimmed) == 0 ||
		bytes.Equal(trimmed, []byte("null")) ||
		bytes.Equal(trimmed, []byte("[]"))
}

// Decode deserializa el payload en dest. Si la consulta pedía fila única y el
// payload es una secuencia, decodifica el primer elemento; una secuencia
// vacía devuelve ErrNoRows, nunca un índice fuera de rango.
func (r *Result) Decode(dest any) error {
	if r.single {
		return r.One(dest)
	}
	return r.All(dest)
}

// One deserializa exactamente un registro en dest, desenvolviendo la
// secuencia si el backend devolvió una. Útil para inserts con representación.
func (r *Result) One(dest any) error {
	trimmed := bytes.TrimSpace(r.raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrNoRows
	}
	if trimmed[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return err
		}
		if len(elems) == 0 {
			return ErrNoRows
		}
		return json.Unmarshal(elems[0], dest)
	}
	return json.Unmarshal(trimmed, dest)
}

// All deserializa la secuencia completa en dest (puntero a slice).
// Un payload vacío deja el slice en nil sin error.
func (r *Result) All(dest any) error {
	if r.Empty() {
		return nil
	}
	return json.Unmarshal(r.raw, dest)
}

// Count devuelve cuántos registros trae el payload; 0 si está vacío y 1 si
// el backend devolvió un objeto suelto.
func (r *Result) Count() (int, error) {
	if r.Empty() {
		return 0, nil
	}
	trimmed := bytes.TrimSpace(r.raw)
	if trimmed[0] != '[' {
		return 1, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return 0, err
	}
	return len(elems), nil
}
