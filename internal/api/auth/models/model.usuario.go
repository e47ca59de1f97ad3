// Package models - modelo de usuario del back-office.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles disponibles para los usuarios del back-office
const (
	RolAdmin   = "admin"   // Acceso total, incluye gestión de usuarios
	RolAsesora = "asesora" // Gestión de pedidos y consultas de catálogo
)

// Usuario define el modelo de usuario del back-office.
// Token contiene el token de autenticación más reciente.
// Tokens contiene un token por dispositivo, identificado por hwid.
type Usuario struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nombre    string             `json:"nombre" bson:"nombre"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password  string             `json:"-" bson:"password,omitempty"`
	Rol       string             `json:"rol" bson:"rol"`
	Token     string             `json:"token" bson:"token"`
	Tokens    []Token            `json:"-" bson:"tokens"`
	IsBlock   bool               `json:"-" bson:"isBlock"`
	BlockNote string             `json:"-" bson:"blockNote"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// EsAdmin indica si el usuario tiene rol de administrador
func (u *Usuario) EsAdmin() bool {
	return u.Rol == RolAdmin
}
