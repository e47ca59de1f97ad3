// Package models - tokens de sesión del domain auth.
package models

// Token es el token de sesión por dispositivo (un token por hwid)
type Token struct {
	Hwid     string `json:"hwid" bson:"hwid,omitempty"`
	JwtToken string `json:"jwtToken,omitempty" bson:"jwtToken,omitempty"`
}
