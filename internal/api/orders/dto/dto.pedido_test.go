package ordersdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"
)

func lineaDePrueba() LineaInput {
	return LineaInput{
		ProductoID: "65f1a2b3c4d5e6f7a8b9c0d1",
		Cantidad:   100,
	}
}

func TestPedidoCreateInput_ContactoCompleto(t *testing.T) {
	global.InitValidator()

	input := PedidoCreateInput{
		Cliente: ClienteInput{
			Nombre:   "María García",
			Email:    "maria@example.com",
			Telefono: "+54 11 4444-5555",
		},
		Lineas: []LineaInput{lineaDePrueba()},
	}
	assert.NoError(t, global.Validate.Struct(input))
}

// El pedido de invitado exige teléfono: sin él la asesora no puede hacer el
// seguimiento por WhatsApp
func TestPedidoCreateInput_SinTelefono(t *testing.T) {
	global.InitValidator()

	input := PedidoCreateInput{
		Cliente: ClienteInput{
			Nombre: "María García",
			Email:  "maria@example.com",
		},
		Lineas: []LineaInput{lineaDePrueba()},
	}
	assert.Error(t, global.Validate.Struct(input))
}

func TestPedidoCreateInput_SinEmail(t *testing.T) {
	global.InitValidator()

	input := PedidoCreateInput{
		Cliente: ClienteInput{
			Nombre:   "María García",
			Telefono: "+54 11 4444-5555",
		},
		Lineas: []LineaInput{lineaDePrueba()},
	}
	assert.Error(t, global.Validate.Struct(input))
}

// El carrito guardado se sigue por email; el teléfono puede faltar
func TestCarritoGuardarInput_TelefonoOpcional(t *testing.T) {
	global.InitValidator()

	input := CarritoGuardarInput{
		Cliente: ClienteCarritoInput{
			Nombre: "María García",
			Email:  "maria@example.com",
		},
		Lineas: []LineaInput{lineaDePrueba()},
	}
	assert.NoError(t, global.Validate.Struct(input))

	input.Cliente.Email = ""
	assert.Error(t, global.Validate.Struct(input))
}

func TestPedidoCreateInput_OrigenInvalido(t *testing.T) {
	global.InitValidator()

	input := PedidoCreateInput{
		Cliente: ClienteInput{
			Nombre:   "María García",
			Email:    "maria@example.com",
			Telefono: "+54 11 4444-5555",
		},
		Lineas: []LineaInput{lineaDePrueba()},
		Origen: "telepatia",
	}
	assert.Error(t, global.Validate.Struct(input))
}
