package entity

// Trabajador empleado de la farmacia con acceso al sistema (tabla remota `trabajador`).
type Trabajador struct {
	IDTrabajador int    `json:"idtrabajador,omitempty"`
	Usuario      string `json:"usuario"`
	Password     string `json:"password,omitempty"` // hash bcrypt, nunca en claro tras persistir
	Nombre       string `json:"nombre"`
	Apellidos    string `json:"apellidos"`
	Acceso       string `json:"acceso,omitempty"` // rol: admin, vendedor
	Estado       string `json:"estado"`           // activo, inactivo
}
