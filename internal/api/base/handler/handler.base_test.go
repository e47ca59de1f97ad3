package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type modeloDePrueba struct {
	Nombre    string
	Categoria string
	DuenoID   primitive.ObjectID
	Activo    bool
}

type createDePrueba struct {
	Nombre    string `json:"nombre"`
	Categoria string `json:"categoria"`
	DuenoID   string `json:"duenoId" transform:"str_objectid,optional"`
	Activo    bool   `json:"activo"`
}

func handlerDePrueba() *BaseHandler[modeloDePrueba, createDePrueba, createDePrueba] {
	return NewBaseHandler[modeloDePrueba, createDePrueba, createDePrueba](nil)
}

func TestTransformCreateInputToModel(t *testing.T) {
	h := handlerDePrueba()
	oid := primitive.NewObjectID()

	input := &createDePrueba{
		Nombre:    "Bolsa kraft",
		Categoria: "bolsas",
		DuenoID:   oid.Hex(),
		Activo:    true,
	}

	model, err := h.TransformCreateInputToModel(input)
	require.NoError(t, err)
	assert.Equal(t, "Bolsa kraft", model.Nombre)
	assert.Equal(t, "bolsas", model.Categoria)
	assert.Equal(t, oid, model.DuenoID)
	assert.True(t, model.Activo)
}

func TestTransformCreateInputToModel_CampoOpcionalVacio(t *testing.T) {
	h := handlerDePrueba()

	model, err := h.TransformCreateInputToModel(&createDePrueba{Nombre: "Bolsa"})
	require.NoError(t, err)
	assert.Equal(t, "Bolsa", model.Nombre)
	assert.True(t, model.DuenoID.IsZero())
}

func TestNormalizeFilter_OidExtendido(t *testing.T) {
	h := handlerDePrueba()
	oid := primitive.NewObjectID()

	filter := map[string]interface{}{
		"_id": map[string]interface{}{"$oid": oid.Hex()},
	}

	normalized := h.normalizeFilter(filter)
	assert.Equal(t, oid, normalized["_id"])
}

func TestNormalizeFilter_CampoID(t *testing.T) {
	h := handlerDePrueba()
	oid := primitive.NewObjectID()

	filter := map[string]interface{}{
		"productoId": oid.Hex(),
		"nombre":     "bolsa",
	}

	normalized := h.normalizeFilter(filter)
	assert.Equal(t, oid, normalized["productoId"])
	// Los campos que no terminan en Id quedan como strings
	assert.Equal(t, "bolsa", normalized["nombre"])
}

func TestNormalizeFilter_InSobreCampoID(t *testing.T) {
	h := handlerDePrueba()
	oid1 := primitive.NewObjectID()
	oid2 := primitive.NewObjectID()

	filter := map[string]interface{}{
		"productoId": map[string]interface{}{
			"$in": []interface{}{oid1.Hex(), oid2.Hex()},
		},
	}

	normalized := h.normalizeFilter(filter)
	inValues := normalized["productoId"].(map[string]interface{})["$in"].([]interface{})
	assert.Equal(t, oid1, inValues[0])
	assert.Equal(t, oid2, inValues[1])
}

func TestValidateFilter_CampoProhibido(t *testing.T) {
	h := handlerDePrueba()

	err := h.validateFilter(map[string]interface{}{"password": "x"})
	assert.Error(t, err)
}

func TestValidateFilter_OperadorNoPermitido(t *testing.T) {
	h := handlerDePrueba()

	err := h.validateFilter(map[string]interface{}{
		"nombre": map[string]interface{}{"$where": "1"},
	})
	assert.Error(t, err)
}

func TestValidateFilter_OperadorPermitido(t *testing.T) {
	h := handlerDePrueba()

	err := h.validateFilter(map[string]interface{}{
		"cantidad": map[string]interface{}{"$gte": 10},
		"estado":   map[string]interface{}{"$in": []interface{}{"pendiente"}},
	})
	assert.NoError(t, err)
}

func TestValidateFilter_DemasiadosCampos(t *testing.T) {
	h := handlerDePrueba()

	filter := make(map[string]interface{})
	for i := 0; i < 11; i++ {
		filter[string(rune('a'+i))] = i
	}

	err := h.validateFilter(filter)
	assert.Error(t, err)
}
