package models

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func pedidoDePrueba() *Pedido {
	return &Pedido{
		ID: primitive.NewObjectID(),
		Cliente: Cliente{
			Nombre:   "María García",
			Email:    "maria@example.com",
			Telefono: "+54 (11) 4444-5555",
		},
		Lineas: []LineaPedido{
			{ProductoID: primitive.NewObjectID(), NombreProducto: "Bolsa kraft", Cantidad: 2, PrecioUnitario: 500},
			{ProductoID: primitive.NewObjectID(), NombreProducto: "Bolsa friselina", Cantidad: 3, PrecioUnitario: 450, ConLogo: true},
		},
		Estado: EstadoPendiente,
		HistorialEstados: []CambioEstado{
			{Estado: EstadoPendiente, Fecha: time.Now().UnixMilli()},
		},
	}
}

func TestRecalcularTotales(t *testing.T) {
	p := pedidoDePrueba()
	p.CostoEnvio = 100
	p.Descuento = 50

	p.RecalcularTotales()

	assert.Equal(t, 1000.0, p.Lineas[0].Subtotal)
	assert.Equal(t, 1350.0, p.Lineas[1].Subtotal)
	assert.Equal(t, 2350.0, p.Subtotal)
	assert.Equal(t, 2400.0, p.Total)
}

func TestRecalcularTotales_Idempotente(t *testing.T) {
	p := pedidoDePrueba()
	p.CostoEnvio = 100
	p.Impuestos = 21.5
	p.Descuento = 50

	p.RecalcularTotales()
	primerTotal := p.Total
	primerSubtotal := p.Subtotal

	p.RecalcularTotales()
	assert.Equal(t, primerTotal, p.Total)
	assert.Equal(t, primerSubtotal, p.Subtotal)
}

func TestRecalcularTotales_Redondeo(t *testing.T) {
	p := &Pedido{
		Lineas: []LineaPedido{
			{Cantidad: 3, PrecioUnitario: 0.1},
		},
	}

	p.RecalcularTotales()

	assert.Equal(t, 0.3, p.Lineas[0].Subtotal)
	assert.Equal(t, 0.3, p.Total)
}

func TestRecalcularTotales_PisaMontosDesfasados(t *testing.T) {
	// Si el subtotal de una línea viene corrupto, recalcular lo corrige
	p := pedidoDePrueba()
	p.Lineas[0].Subtotal = 99999
	p.Subtotal = 1
	p.Total = 1

	p.RecalcularTotales()

	assert.Equal(t, 1000.0, p.Lineas[0].Subtotal)
	assert.Equal(t, 2350.0, p.Subtotal)
}

func TestCodigo(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("65f1a2b3c4d5e6f7a8b9cdef")
	require.NoError(t, err)

	p := &Pedido{ID: id}
	assert.Equal(t, "b9cdef", p.Codigo())
}

func TestEnlaceWhatsApp(t *testing.T) {
	p := pedidoDePrueba()

	enlace := p.EnlaceWhatsApp("Hola %s, soy de ALFA BOLSAS. Te contacto por tu pedido #%s")

	// El teléfono queda solo con dígitos
	assert.True(t, strings.HasPrefix(enlace, "https://wa.me/541144445555?text="), enlace)

	// El mensaje va URL-encoded y al decodificar contiene nombre y código
	parsed, err := url.Parse(enlace)
	require.NoError(t, err)
	texto := parsed.Query().Get("text")
	assert.Contains(t, texto, "María García")
	assert.Contains(t, texto, "#"+p.Codigo())
}

func TestEnlaceWhatsApp_SinTelefono(t *testing.T) {
	p := pedidoDePrueba()
	p.Cliente.Telefono = ""

	assert.Equal(t, "", p.EnlaceWhatsApp("Hola %s, pedido %s"))
}

func TestEstadoValido(t *testing.T) {
	assert.True(t, EstadoValido(EstadoPendiente))
	assert.True(t, EstadoValido(EstadoCarritoGuardado))
	assert.True(t, EstadoValido(EstadoCancelado))
	assert.False(t, EstadoValido("inexistente"))
	assert.False(t, EstadoValido(""))
}

func TestTransicionPermitida_FlujoInvitado(t *testing.T) {
	// El camino feliz completo del pedido de invitado
	camino := []string{
		EstadoPendiente, EstadoContactado, EstadoConfirmado, EstadoPagado,
		EstadoEnProduccion, EstadoEnviado, EstadoEntregado,
	}
	for i := 0; i < len(camino)-1; i++ {
		assert.True(t, TransicionPermitida(camino[i], camino[i+1]), "%s → %s", camino[i], camino[i+1])
	}
}

func TestTransicionPermitida_FlujoCarrito(t *testing.T) {
	camino := []string{
		EstadoCarritoGuardado, EstadoPagoPendiente, EstadoPagoCompletado,
		EstadoPreparando, EstadoEnviado, EstadoEntregado,
	}
	for i := 0; i < len(camino)-1; i++ {
		assert.True(t, TransicionPermitida(camino[i], camino[i+1]), "%s → %s", camino[i], camino[i+1])
	}
}

func TestTransicionPermitida_Rechazos(t *testing.T) {
	// Saltos y retrocesos que el modo estricto rechaza
	assert.False(t, TransicionPermitida(EstadoPendiente, EstadoEntregado))
	assert.False(t, TransicionPermitida(EstadoEntregado, EstadoPendiente))
	assert.False(t, TransicionPermitida(EstadoCancelado, EstadoPendiente))
	assert.False(t, TransicionPermitida(EstadoEnviado, EstadoCancelado))
	// Los dos flujos no se cruzan
	assert.False(t, TransicionPermitida(EstadoPendiente, EstadoPagoPendiente))
	assert.False(t, TransicionPermitida(EstadoCarritoGuardado, EstadoContactado))
}

func TestHistorial_AppendMonotonico(t *testing.T) {
	p := pedidoDePrueba()

	base := p.HistorialEstados[0].Fecha
	p.HistorialEstados = append(p.HistorialEstados, CambioEstado{Estado: EstadoContactado, Fecha: base + 1000})
	p.HistorialEstados = append(p.HistorialEstados, CambioEstado{Estado: EstadoConfirmado, Fecha: base + 2000})

	require.Len(t, p.HistorialEstados, 3)
	assert.Equal(t, EstadoPendiente, p.HistorialEstados[0].Estado)
	assert.Equal(t, EstadoContactado, p.HistorialEstados[1].Estado)
	assert.Equal(t, EstadoConfirmado, p.HistorialEstados[2].Estado)
	for i := 1; i < len(p.HistorialEstados); i++ {
		assert.Greater(t, p.HistorialEstados[i].Fecha, p.HistorialEstados[i-1].Fecha)
	}
}

func TestPedido_RoundTripBSON(t *testing.T) {
	p := pedidoDePrueba()
	p.CostoEnvio = 100
	p.Descuento = 50
	p.RecalcularTotales()
	p.HistorialEstados = append(p.HistorialEstados, CambioEstado{Estado: EstadoContactado, Fecha: time.Now().UnixMilli()})
	p.Cliente.UsuarioID = primitive.NewObjectID()
	p.Cliente.Ciudad = "Bogotá"
	p.Cliente.Direccion = "Calle 45 #12-34"
	p.Cliente.CodigoPostal = "110111"
	p.Cliente.Departamento = "Cundinamarca"
	p.Origen = OrigenWhatsApp
	p.IPCliente = "190.24.10.5"

	raw, err := bson.Marshal(p)
	require.NoError(t, err)

	var leido Pedido
	require.NoError(t, bson.Unmarshal(raw, &leido))

	assert.Equal(t, p.Total, leido.Total)
	assert.Equal(t, p.Subtotal, leido.Subtotal)
	assert.Len(t, leido.HistorialEstados, len(p.HistorialEstados))
	assert.Equal(t, p.Lineas[1].ConLogo, leido.Lineas[1].ConLogo)
	assert.Equal(t, p.Cliente.Telefono, leido.Cliente.Telefono)
	assert.Equal(t, p.Cliente.UsuarioID, leido.Cliente.UsuarioID)
	assert.Equal(t, p.Cliente.Ciudad, leido.Cliente.Ciudad)
	assert.Equal(t, p.Cliente.Direccion, leido.Cliente.Direccion)
	assert.Equal(t, p.Cliente.CodigoPostal, leido.Cliente.CodigoPostal)
	assert.Equal(t, p.Cliente.Departamento, leido.Cliente.Departamento)
	assert.Equal(t, OrigenWhatsApp, leido.Origen)
	assert.Equal(t, p.IPCliente, leido.IPCliente)
}
