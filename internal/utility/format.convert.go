package utility

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID convierte un string hexadecimal en ObjectID.
// Devuelve NilObjectID si el string no es válido.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// Round2 redondea un monto a 2 decimales
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
