package dto

// CreateClienteRequest entrada para registrar un cliente.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

// UpdateClienteRequest actualización parcial de un cliente.
type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Apellidos *string `json:"apellidos"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
}

// Cambios traduce los campos presentes a un mapa columna → valor.
func (r UpdateClienteRequest) Cambios() map[string]any {
	cambios := make(map[string]any)
	if r.Nombre != nil {
		cambios["nombre"] = *r.Nombre
	}
	if r.Apellidos != nil {
		cambios["apellidos"] = *r.Apellidos
	}
	if r.Telefono != nil {
		cambios["telefono"] = *r.Telefono
	}
	if r.Email != nil {
		cambios["email"] = *r.Email
	}
	return cambios
}

// CreateCategoriaRequest entrada para crear una categoría.
type CreateCategoriaRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}
