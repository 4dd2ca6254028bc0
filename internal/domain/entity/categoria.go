package entity

// Categoria agrupa artículos (tabla remota `categoria`).
type Categoria struct {
	IDCategoria int    `json:"idcategoria,omitempty"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Condicion   int    `json:"condicion,omitempty"`
}

// Presentacion forma de presentación de un artículo: caja, blíster, jarabe...
// (tabla remota `presentacion`). Referenciada por Articulo, nunca mutada aquí.
type Presentacion struct {
	IDPresentacion int    `json:"idpresentacion,omitempty"`
	Nombre         string `json:"nombre"`
	Descripcion    string `json:"descripcion,omitempty"`
}
