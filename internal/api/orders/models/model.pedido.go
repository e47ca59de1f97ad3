package models

import (
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ersonet/alfabolsas-ecommerce/internal/utility"
)

// Estados del pedido. Un pedido de invitado arranca en pendiente; un carrito
// persistido arranca en carrito_guardado y sigue el flujo de pago.
const (
	EstadoPendiente    = "pendiente"
	EstadoContactado   = "contactado"
	EstadoConfirmado   = "confirmado"
	EstadoPagado       = "pagado"
	EstadoEnProduccion = "en_produccion"
	EstadoEnviado      = "enviado"
	EstadoEntregado    = "entregado"
	EstadoCancelado    = "cancelado"

	EstadoCarritoGuardado = "carrito_guardado"
	EstadoPagoPendiente   = "pago_pendiente"
	EstadoPagoProcesando  = "pago_procesando"
	EstadoPagoCompletado  = "pago_completado"
	EstadoPreparando      = "preparando"
)

// estadosValidos es el conjunto de estados reconocidos
var estadosValidos = map[string]bool{
	EstadoPendiente:       true,
	EstadoContactado:      true,
	EstadoConfirmado:      true,
	EstadoPagado:          true,
	EstadoEnProduccion:    true,
	EstadoEnviado:         true,
	EstadoEntregado:       true,
	EstadoCancelado:       true,
	EstadoCarritoGuardado: true,
	EstadoPagoPendiente:   true,
	EstadoPagoProcesando:  true,
	EstadoPagoCompletado:  true,
	EstadoPreparando:      true,
}

// transiciones es la tabla de transiciones del modo estricto. En modo
// permisivo el back-office puede mover un pedido a cualquier estado válido
// (corrección manual); la tabla solo se consulta cuando el modo estricto
// está activo.
var transiciones = map[string][]string{
	EstadoPendiente:       {EstadoContactado, EstadoCancelado},
	EstadoContactado:      {EstadoConfirmado, EstadoCancelado},
	EstadoConfirmado:      {EstadoPagado, EstadoCancelado},
	EstadoPagado:          {EstadoEnProduccion, EstadoCancelado},
	EstadoEnProduccion:    {EstadoEnviado, EstadoCancelado},
	EstadoEnviado:         {EstadoEntregado},
	EstadoEntregado:       {},
	EstadoCancelado:       {},
	EstadoCarritoGuardado: {EstadoPagoPendiente, EstadoPagoProcesando, EstadoCancelado},
	EstadoPagoPendiente:   {EstadoPagoProcesando, EstadoPagoCompletado, EstadoCancelado},
	EstadoPagoProcesando:  {EstadoPagoCompletado, EstadoPagoPendiente, EstadoCancelado},
	EstadoPagoCompletado:  {EstadoPreparando, EstadoCancelado},
	EstadoPreparando:      {EstadoEnviado, EstadoCancelado},
}

// EstadoValido indica si el estado es uno de los reconocidos
func EstadoValido(estado string) bool {
	return estadosValidos[estado]
}

// TransicionPermitida indica si el cambio desde→hacia está en la tabla de
// transiciones del modo estricto
func TransicionPermitida(desde, hacia string) bool {
	for _, siguiente := range transiciones[desde] {
		if siguiente == hacia {
			return true
		}
	}
	return false
}

// Orígenes del pedido (por qué canal entró)
const (
	OrigenWeb      = "web"
	OrigenWhatsApp = "whatsapp"
	OrigenManual   = "manual"
)

// Cliente son los datos de contacto del comprador. Los pedidos de invitado
// no requieren cuenta; si el cliente está registrado, UsuarioID lo vincula.
// La dirección es opcional al crear y se completa al confirmar.
type Cliente struct {
	UsuarioID    primitive.ObjectID `json:"usuarioId" bson:"usuarioId,omitempty"`
	Nombre       string             `json:"nombre" bson:"nombre"`
	Email        string             `json:"email" bson:"email,omitempty"`
	Telefono     string             `json:"telefono" bson:"telefono,omitempty"`
	Ciudad       string             `json:"ciudad" bson:"ciudad,omitempty"`
	Direccion    string             `json:"direccion" bson:"direccion,omitempty"`
	CodigoPostal string             `json:"codigoPostal" bson:"codigoPostal,omitempty"`
	Departamento string             `json:"departamento" bson:"departamento,omitempty"`
}

// LineaPedido es un renglón del pedido con el producto congelado al momento
// de la compra. El nombre y el precio se copian del producto para que los
// cambios posteriores del catálogo no alteren pedidos históricos.
type LineaPedido struct {
	ProductoID     primitive.ObjectID `json:"productoId" bson:"productoId"`
	NombreProducto string             `json:"nombreProducto" bson:"nombreProducto"`
	Cantidad       int                `json:"cantidad" bson:"cantidad"`
	ConLogo        bool               `json:"conLogo" bson:"conLogo"`
	PrecioUnitario float64            `json:"precioUnitario" bson:"precioUnitario"`
	Subtotal       float64            `json:"subtotal" bson:"subtotal"`
}

// CambioEstado es una entrada del historial de estados. El historial solo
// crece; nunca se reescribe una entrada existente.
type CambioEstado struct {
	Estado      string             `json:"estado" bson:"estado"`
	Observacion string             `json:"observacion" bson:"observacion,omitempty"`
	ActorID     primitive.ObjectID `json:"actorId" bson:"actorId,omitempty"`
	Fecha       int64              `json:"fecha" bson:"fecha"`
}

// Recordatorio registra el seguimiento de carritos abandonados
type Recordatorio struct {
	Enviado     bool  `json:"enviado" bson:"enviado"`
	Contador    int   `json:"contador" bson:"contador"`
	UltimoEnvio int64 `json:"ultimoEnvio" bson:"ultimoEnvio,omitempty"`
}

// MetodoPago registra cómo pagó el cliente. No hay pasarela: la asesora
// anota el tipo y, si corresponde, la URL del comprobante subido.
type MetodoPago struct {
	Tipo        string `json:"tipo" bson:"tipo,omitempty"`
	Comprobante string `json:"comprobante" bson:"comprobante,omitempty"`
}

// InfoEnvio son los datos del despacho del pedido
type InfoEnvio struct {
	Empresa              string `json:"empresa" bson:"empresa,omitempty"`
	NumeroGuia           string `json:"numeroGuia" bson:"numeroGuia,omitempty"`
	FechaEnvio           int64  `json:"fechaEnvio" bson:"fechaEnvio,omitempty"`
	FechaEntregaEstimada int64  `json:"fechaEntregaEstimada" bson:"fechaEntregaEstimada,omitempty"`
}

// Pedido es el agregado central de la tienda: carrito persistido, pedido de
// invitado y orden del back-office son el mismo documento en distintos
// estados.
type Pedido struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Cliente          Cliente            `json:"cliente" bson:"cliente"`
	Lineas           []LineaPedido      `json:"lineas" bson:"lineas"`
	Subtotal         float64            `json:"subtotal" bson:"subtotal"`
	CostoEnvio       float64            `json:"costoEnvio" bson:"costoEnvio"`
	Impuestos        float64            `json:"impuestos" bson:"impuestos"`
	Descuento        float64            `json:"descuento" bson:"descuento"`
	Total            float64            `json:"total" bson:"total"`
	Estado           string             `json:"estado" bson:"estado" index:"single"`
	HistorialEstados []CambioEstado     `json:"historialEstados" bson:"historialEstados"`
	MetodoPago       MetodoPago         `json:"metodoPago" bson:"metodoPago,omitempty"`
	Envio            InfoEnvio          `json:"envio" bson:"envio,omitempty"`
	AtendidoPor      primitive.ObjectID `json:"atendidoPor" bson:"atendidoPor,omitempty"`
	Recordatorio     Recordatorio       `json:"recordatorio" bson:"recordatorio"`
	EsCarrito        bool               `json:"esCarrito" bson:"esCarrito"`
	Origen           string             `json:"origen" bson:"origen"`
	IPCliente        string             `json:"ipCliente" bson:"ipCliente,omitempty"`
	Notas            []Nota             `json:"notas" bson:"notas,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}

// Nota es una anotación interna del back-office sobre el pedido
type Nota struct {
	ID        primitive.ObjectID `json:"id" bson:"id"`
	Texto     string             `json:"texto" bson:"texto"`
	AutorID   primitive.ObjectID `json:"autorId" bson:"autorId,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
}

// RecalcularTotales recalcula el subtotal de cada línea, el subtotal del
// pedido y el total (subtotal + envío + impuestos − descuento). Se invoca
// antes de cada persistencia para que los montos nunca queden desfasados
// de las líneas.
func (p *Pedido) RecalcularTotales() {
	subtotal := 0.0
	for i := range p.Lineas {
		p.Lineas[i].Subtotal = utility.Round2(p.Lineas[i].PrecioUnitario * float64(p.Lineas[i].Cantidad))
		subtotal += p.Lineas[i].Subtotal
	}
	p.Subtotal = utility.Round2(subtotal)
	p.Total = utility.Round2(p.Subtotal + p.CostoEnvio + p.Impuestos - p.Descuento)
}

// Codigo devuelve el código corto del pedido que se muestra al cliente:
// los últimos 6 caracteres hexadecimales del ID
func (p *Pedido) Codigo() string {
	hex := p.ID.Hex()
	if len(hex) < 6 {
		return hex
	}
	return hex[len(hex)-6:]
}

// EnlaceWhatsApp arma el link wa.me para contactar al cliente. La plantilla
// recibe el nombre del cliente y el código del pedido. Devuelve vacío si el
// cliente no tiene teléfono.
func (p *Pedido) EnlaceWhatsApp(plantilla string) string {
	digitos := utility.StripNonDigits(p.Cliente.Telefono)
	if digitos == "" {
		return ""
	}
	mensaje := fmt.Sprintf(plantilla, p.Cliente.Nombre, p.Codigo())
	return "https://wa.me/" + digitos + "?text=" + url.QueryEscape(mensaje)
}
