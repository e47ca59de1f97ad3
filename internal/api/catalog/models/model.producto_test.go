package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// productoDePrueba arma un producto con la tabla escalonada típica de
// bolsas: cuatro rangos por tarifa, el último abierto
func productoDePrueba() *Producto {
	return &Producto{
		Nombre: "Bolsa kraft con manija",
		Slug:   "bolsa-kraft-con-manija",
		Activo: true,
		Precios: TablaPrecios{
			SinLogo: []RangoPrecio{
				{Min: 20, Max: 99, Precio: 500},
				{Min: 100, Max: 299, Precio: 450},
				{Min: 300, Max: 500, Precio: 400},
				{Min: 501, Max: 0, Precio: 350},
			},
			ConLogo: []RangoPrecio{
				{Min: 20, Max: 99, Precio: 650},
				{Min: 100, Max: 299, Precio: 600},
				{Min: 300, Max: 500, Precio: 550},
				{Min: 501, Max: 0, Precio: 500},
			},
		},
	}
}

func TestPrecioPara_RangoIntermedio(t *testing.T) {
	p := productoDePrueba()

	precio, err := p.PrecioPara(150, false)
	require.NoError(t, err)
	assert.Equal(t, 450.0, precio)
}

func TestPrecioPara_LimitesInclusivos(t *testing.T) {
	p := productoDePrueba()

	casos := []struct {
		cantidad int
		esperado float64
	}{
		{20, 500},  // límite inferior del primer rango
		{99, 500},  // límite superior del primer rango
		{100, 450}, // límite inferior del segundo
		{299, 450}, // límite superior del segundo
		{300, 400},
		{500, 400},
		{501, 350}, // arranque del rango abierto
	}

	for _, c := range casos {
		precio, err := p.PrecioPara(c.cantidad, false)
		require.NoError(t, err)
		assert.Equal(t, c.esperado, precio, "cantidad %d", c.cantidad)
	}
}

func TestPrecioPara_RangoAbierto(t *testing.T) {
	p := productoDePrueba()

	precio, err := p.PrecioPara(1000000, false)
	require.NoError(t, err)
	assert.Equal(t, 350.0, precio)
}

func TestPrecioPara_DebajoDelPrimerRango(t *testing.T) {
	// Una cantidad menor al mínimo del primer rango no cae en ningún rango
	// y se cobra el precio del primero
	p := productoDePrueba()

	precio, err := p.PrecioPara(10, false)
	require.NoError(t, err)
	assert.Equal(t, 500.0, precio)
}

func TestPrecioPara_HuecoEntreRangos(t *testing.T) {
	p := &Producto{
		Precios: TablaPrecios{
			SinLogo: []RangoPrecio{
				{Min: 1, Max: 50, Precio: 100},
				{Min: 100, Max: 0, Precio: 80},
			},
		},
	}

	// 75 cae en el hueco entre 50 y 100: se cobra el primer rango
	precio, err := p.PrecioPara(75, false)
	require.NoError(t, err)
	assert.Equal(t, 100.0, precio)
}

func TestPrecioPara_TarifaConLogo(t *testing.T) {
	p := productoDePrueba()

	precio, err := p.PrecioPara(150, true)
	require.NoError(t, err)
	assert.Equal(t, 600.0, precio)
}

func TestPrecioPara_CantidadInvalida(t *testing.T) {
	p := productoDePrueba()

	_, err := p.PrecioPara(0, false)
	assert.Error(t, err)

	_, err = p.PrecioPara(-5, false)
	assert.Error(t, err)
}

func TestPrecioPara_SinPrecios(t *testing.T) {
	p := &Producto{}

	_, err := p.PrecioPara(10, false)
	assert.Error(t, err)
}

func TestRangoPrecio_Contiene(t *testing.T) {
	cerrado := RangoPrecio{Min: 100, Max: 299, Precio: 450}
	assert.False(t, cerrado.Contiene(99))
	assert.True(t, cerrado.Contiene(100))
	assert.True(t, cerrado.Contiene(299))
	assert.False(t, cerrado.Contiene(300))

	abierto := RangoPrecio{Min: 501, Max: 0, Precio: 350}
	assert.False(t, abierto.Contiene(500))
	assert.True(t, abierto.Contiene(501))
	assert.True(t, abierto.Contiene(99999))
}

func TestProducto_RoundTripBSON(t *testing.T) {
	p := productoDePrueba()
	p.Categoria = CategoriaPapel
	p.Stock = 350
	p.Especificaciones = Especificaciones{
		Dimensiones: "17 x 22 cm",
		Material:    "Kraft 120 gramos",
		Peso:        "50 gramos",
		Colores:     []string{"natural", "negro"},
	}

	raw, err := bson.Marshal(p)
	require.NoError(t, err)

	var leido Producto
	require.NoError(t, bson.Unmarshal(raw, &leido))

	assert.Equal(t, CategoriaPapel, leido.Categoria)
	assert.Equal(t, 350, leido.Stock)
	assert.Equal(t, p.Especificaciones.Dimensiones, leido.Especificaciones.Dimensiones)
	assert.Equal(t, p.Especificaciones.Material, leido.Especificaciones.Material)
	assert.Equal(t, p.Especificaciones.Colores, leido.Especificaciones.Colores)
	assert.Len(t, leido.Precios.SinLogo, len(p.Precios.SinLogo))
}
