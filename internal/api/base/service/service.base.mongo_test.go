package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUpdateData_Passthrough(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"estado": "pendiente"}}

	resultado, err := ToUpdateData(original)
	require.NoError(t, err)
	assert.Same(t, original, resultado)
}

func TestToUpdateData_ValorDirecto(t *testing.T) {
	original := UpdateData{Set: map[string]interface{}{"estado": "pendiente"}}

	resultado, err := ToUpdateData(original)
	require.NoError(t, err)
	assert.Equal(t, original.Set, resultado.Set)
}

func TestToUpdateData_MapConOperadores(t *testing.T) {
	data := map[string]interface{}{
		"$set":  map[string]interface{}{"estado": "contactado"},
		"$push": map[string]interface{}{"historialEstados": "x"},
	}

	resultado, err := ToUpdateData(data)
	require.NoError(t, err)
	assert.Equal(t, "contactado", resultado.Set["estado"])
	assert.Equal(t, "x", resultado.Push["historialEstados"])
}

func TestToUpdateData_MapPlano(t *testing.T) {
	data := map[string]interface{}{"nombre": "Bolsa kraft", "activo": true}

	resultado, err := ToUpdateData(data)
	require.NoError(t, err)
	assert.Equal(t, "Bolsa kraft", resultado.Set["nombre"])
	assert.Equal(t, true, resultado.Set["activo"])
	assert.Nil(t, resultado.Push)
}

func TestToUpdateData_Struct(t *testing.T) {
	type entrada struct {
		Nombre string `json:"nombre"`
		Activo bool   `json:"activo"`
	}

	resultado, err := ToUpdateData(entrada{Nombre: "Bolsa friselina", Activo: true})
	require.NoError(t, err)
	assert.Equal(t, "Bolsa friselina", resultado.Set["nombre"])
}
