package catalogdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"
)

func productoCreateDePrueba() ProductoCreateInput {
	return ProductoCreateInput{
		Nombre:    "Bolsa kraft con manija",
		Categoria: "papel",
		Stock:     100,
	}
}

func TestProductoCreateInput_CategoriaDelCatalogo(t *testing.T) {
	global.InitValidator()

	for _, categoria := range []string{"papel", "tela", "plastico", "cajas", "publicidad"} {
		input := productoCreateDePrueba()
		input.Categoria = categoria
		assert.NoError(t, global.Validate.Struct(input), categoria)
	}
}

func TestProductoCreateInput_CategoriaInvalida(t *testing.T) {
	global.InitValidator()

	input := productoCreateDePrueba()
	input.Categoria = "metal"
	assert.Error(t, global.Validate.Struct(input))

	input.Categoria = ""
	assert.Error(t, global.Validate.Struct(input))
}

func TestProductoCreateInput_StockNegativo(t *testing.T) {
	global.InitValidator()

	input := productoCreateDePrueba()
	input.Stock = -1
	assert.Error(t, global.Validate.Struct(input))
}

func TestProductoUpdateInput_CategoriaOpcional(t *testing.T) {
	global.InitValidator()

	// Sin categoría no se toca; con una inválida se rechaza
	assert.NoError(t, global.Validate.Struct(ProductoUpdateInput{}))
	assert.Error(t, global.Validate.Struct(ProductoUpdateInput{Categoria: "vidrio"}))
}
