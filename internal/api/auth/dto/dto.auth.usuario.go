// Package authdto - DTOs del domain auth.
package authdto

// LoginInput entrada para el login con email y contraseña
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Hwid     string `json:"hwid" validate:"required"`
}

// UsuarioCreateInput entrada para crear un usuario del back-office
type UsuarioCreateInput struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Rol      string `json:"rol" validate:"required,oneof=admin asesora"`
}

// UsuarioUpdateInput entrada para actualizar un usuario
type UsuarioUpdateInput struct {
	Nombre string `json:"nombre"`
	Rol    string `json:"rol" validate:"omitempty,oneof=admin asesora"`
}

// LogoutInput entrada para el logout
type LogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// CambiarPasswordInput entrada para cambiar la contraseña propia
type CambiarPasswordInput struct {
	PasswordActual string `json:"passwordActual" validate:"required"`
	PasswordNueva  string `json:"passwordNueva" validate:"required,strong_password"`
}

// BloquearUsuarioInput entrada para bloquear un usuario
type BloquearUsuarioInput struct {
	Email string `json:"email" validate:"required,email"`
	Nota  string `json:"nota" validate:"required"`
}

// DesbloquearUsuarioInput entrada para desbloquear un usuario
type DesbloquearUsuarioInput struct {
	Email string `json:"email" validate:"required,email"`
}
