package utility

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JwtClaims contiene los datos codificados dentro del JWT
type JwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken genera un JWT firmado con HS256.
// Devuelve un map con la clave "token" para mantener la misma forma
// que el resto de los helpers de autenticación.
func CreateToken(secret string, userID string, timeStr string, randomNumber string, ttl time.Duration) (map[string]string, error) {
	claims := JwtClaims{
		UserID:       userID,
		Time:         timeStr,
		RandomNumber: randomNumber,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken valida la firma y la expiración de un JWT y devuelve sus claims
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("token inválido", jwt.ValidationErrorSignatureInvalid)
	}
	return claims, nil
}
