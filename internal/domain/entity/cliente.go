package entity

// Cliente representa un cliente de la farmacia (tabla remota `cliente`).
type Cliente struct {
	IDCliente int    `json:"idcliente,omitempty"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
}
