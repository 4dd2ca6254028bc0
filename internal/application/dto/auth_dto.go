package dto

// LoginRequest credenciales de acceso de un trabajador.
type LoginRequest struct {
	Usuario string `json:"usuario"`
	Clave   string `json:"clave"`
}

// LoginResponse tokens emitidos tras un login correcto.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// RefreshRequest entrada para renovar el access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse nuevo access token.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// RegisterRequest alta de un trabajador.
type RegisterRequest struct {
	Usuario   string `json:"usuario"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Clave     string `json:"clave"`
}

// RecoverCheckRequest verificación de usuario para recuperación de contraseña.
type RecoverCheckRequest struct {
	Usuario string `json:"usuario"`
}

// RecoverUpdateRequest cambio de contraseña en la recuperación.
type RecoverUpdateRequest struct {
	TrabajadorID  int    `json:"usuario_id"`
	NuevaPassword string `json:"nueva_password"`
}

// UpdatePerfilRequest cambios del perfil del trabajador autenticado.
type UpdatePerfilRequest struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Password  string `json:"password"` // vacío = no cambiar
}

// UserResponse vista pública de un trabajador (sin hash de contraseña).
type UserResponse struct {
	ID        int    `json:"id"`
	Usuario   string `json:"usuario"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Rol       string `json:"rol"`
}
