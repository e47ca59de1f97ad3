package ordersdto

// ClienteInput son los datos del comprador de un pedido de invitado. El
// nombre, el email y el teléfono son obligatorios: sin teléfono la asesora
// no puede hacer el seguimiento por WhatsApp. La dirección es opcional al
// crear y se completa al confirmar.
type ClienteInput struct {
	UsuarioID    string `json:"usuarioId" validate:"omitempty,len=24,hexadecimal"`
	Nombre       string `json:"nombre" validate:"required,min=2,max=200,no_xss"`
	Email        string `json:"email" validate:"required,email"`
	Telefono     string `json:"telefono" validate:"required,min=6,max=30"`
	Ciudad       string `json:"ciudad" validate:"omitempty,max=100,no_xss"`
	Direccion    string `json:"direccion" validate:"omitempty,max=300,no_xss"`
	CodigoPostal string `json:"codigoPostal" validate:"omitempty,max=20"`
	Departamento string `json:"departamento" validate:"omitempty,max=100,no_xss"`
}

// ClienteCarritoInput son los datos del comprador de un carrito guardado.
// El email alcanza para el seguimiento; el teléfono puede faltar.
type ClienteCarritoInput struct {
	UsuarioID    string `json:"usuarioId" validate:"omitempty,len=24,hexadecimal"`
	Nombre       string `json:"nombre" validate:"required,min=2,max=200,no_xss"`
	Email        string `json:"email" validate:"required,email"`
	Telefono     string `json:"telefono" validate:"omitempty,min=6,max=30"`
	Ciudad       string `json:"ciudad" validate:"omitempty,max=100,no_xss"`
	Direccion    string `json:"direccion" validate:"omitempty,max=300,no_xss"`
	CodigoPostal string `json:"codigoPostal" validate:"omitempty,max=20"`
	Departamento string `json:"departamento" validate:"omitempty,max=100,no_xss"`
}

// LineaInput es un renglón del pedido entrante. El precio NO viene del
// cliente: se resuelve contra la tabla de precios del producto en el server.
type LineaInput struct {
	ProductoID string `json:"productoId" validate:"required,len=24,hexadecimal"`
	Cantidad   int    `json:"cantidad" validate:"required,min=1"`
	ConLogo    bool   `json:"conLogo"`
}

// PedidoCreateInput es la entrada para crear un pedido de invitado
type PedidoCreateInput struct {
	Cliente ClienteInput `json:"cliente" validate:"required"`
	Lineas  []LineaInput `json:"lineas" validate:"required,min=1,dive"`
	Origen  string       `json:"origen" validate:"omitempty,oneof=web whatsapp manual"`
}

// CarritoGuardarInput es la entrada para persistir un carrito. El email es
// obligatorio para poder enviar el recordatorio.
type CarritoGuardarInput struct {
	Cliente ClienteCarritoInput `json:"cliente" validate:"required"`
	Lineas  []LineaInput        `json:"lineas" validate:"required,min=1,dive"`
	Origen  string              `json:"origen" validate:"omitempty,oneof=web whatsapp manual"`
}

// PedidoUpdateInput es la entrada del CRUD genérico de pedidos. Los montos
// y el estado tienen endpoints propios; acá solo se tocan los datos del
// cliente.
type PedidoUpdateInput struct {
	Cliente ClienteInput `json:"cliente"`
}

// CambiarEstadoInput es la entrada para mover un pedido de estado
type CambiarEstadoInput struct {
	Estado      string `json:"estado" validate:"required,max=50"`
	Observacion string `json:"observacion" validate:"omitempty,max=1000,no_xss"`
}

// ActualizarMontosInput ajusta los cargos del pedido; los totales se
// recalculan al persistir
type ActualizarMontosInput struct {
	CostoEnvio float64 `json:"costoEnvio" validate:"min=0"`
	Impuestos  float64 `json:"impuestos" validate:"min=0"`
	Descuento  float64 `json:"descuento" validate:"min=0"`
}

// RegistrarPagoInput anota cómo pagó el cliente. El comprobante es la URL
// del archivo subido por /upload cuando el tipo lo requiere.
type RegistrarPagoInput struct {
	Tipo        string `json:"tipo" validate:"required,oneof=transferencia efectivo contraentrega tarjeta otro"`
	Comprobante string `json:"comprobante" validate:"omitempty,max=500"`
}

// RegistrarEnvioInput son los datos del despacho. La fecha de envío la pone
// el server al registrar.
type RegistrarEnvioInput struct {
	Empresa              string `json:"empresa" validate:"required,max=100,no_xss"`
	NumeroGuia           string `json:"numeroGuia" validate:"omitempty,max=100"`
	FechaEntregaEstimada int64  `json:"fechaEntregaEstimada" validate:"omitempty,min=0"`
}

// NotaInput es una anotación interna sobre el pedido
type NotaInput struct {
	Texto string `json:"texto" validate:"required,min=1,max=2000,no_xss"`
}

// PedidoStats es el resumen del tablero del back-office
type PedidoStats struct {
	Total        int64            `json:"total"`
	PorEstado    map[string]int64 `json:"porEstado"`
	MontoVendido float64          `json:"montoVendido"`
	PedidosHoy   int64            `json:"pedidosHoy"`
	VentasHoy    float64          `json:"ventasHoy"`
}
