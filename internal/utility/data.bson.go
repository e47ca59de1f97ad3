package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap convierte un struct en un map pasando por bson
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("falló bson marshal: %w", err)
	}
	err = bson.Unmarshal(itr, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("falló bson unmarshal: %w", err)
	}
	return stringInterfaceMap, nil
}
