// Package ordershdl - handlers de pedidos: storefront (crear pedido,
// guardar carrito, consultar por email) y back-office (estados, montos,
// recordatorios, notas, tablero).
package ordershdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Ersonet/alfabolsas-ecommerce/internal/api/base/handler"
	ordersdto "github.com/Ersonet/alfabolsas-ecommerce/internal/api/orders/dto"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/api/orders/models"
	orderssvc "github.com/Ersonet/alfabolsas-ecommerce/internal/api/orders/service"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/common"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/logger"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/utility"
)

// PedidoHandler atiende los requests de pedidos
type PedidoHandler struct {
	*basehdl.BaseHandler[models.Pedido, ordersdto.PedidoCreateInput, ordersdto.PedidoUpdateInput]
	pedidoService *orderssvc.PedidoService
}

// NewPedidoHandler crea una instancia de PedidoHandler
func NewPedidoHandler() (*PedidoHandler, error) {
	pedidoService, err := orderssvc.NewPedidoService()
	if err != nil {
		return nil, fmt.Errorf("no se pudo crear el service de pedidos: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Pedido, ordersdto.PedidoCreateInput, ordersdto.PedidoUpdateInput](pedidoService)
	return &PedidoHandler{
		BaseHandler:   baseHandler,
		pedidoService: pedidoService,
	}, nil
}

// actorDesdeContexto devuelve el ObjectID del usuario autenticado, o
// NilObjectID si el request no pasó por el middleware de autenticación
func actorDesdeContexto(c fiber.Ctx) primitive.ObjectID {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID
	}
	if s, ok := userID.(string); ok {
		return utility.String2ObjectID(s)
	}
	return primitive.NilObjectID
}

// parseID lee el param :id como ObjectID
func (h *PedidoHandler) parseID(c fiber.Ctx) (primitive.ObjectID, bool) {
	id := utility.String2ObjectID(c.Params("id"))
	if id.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID de pedido inválido", common.StatusBadRequest, nil))
		return primitive.NilObjectID, false
	}
	return id, true
}

// HandleCrearPedido crea un pedido de invitado desde el storefront
func (h *PedidoHandler) HandleCrearPedido(c fiber.Ctx) error {
	var input ordersdto.PedidoCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	pedido, err := h.pedidoService.CrearPedido(c.Context(), &input, c.IP())
	if err == nil {
		logger.LogCRUD("create", "pedidos", pedido.ID.Hex(), c, map[string]interface{}{"total": pedido.Total})
	}
	h.HandleResponse(c, pedido, err)
	return nil
}

// HandleGuardarCarrito persiste un carrito para retomarlo después
func (h *PedidoHandler) HandleGuardarCarrito(c fiber.Ctx) error {
	var input ordersdto.CarritoGuardarInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	pedido, err := h.pedidoService.GuardarCarrito(c.Context(), &input, c.IP())
	if err == nil {
		logger.LogCRUD("create", "carritos", pedido.ID.Hex(), c, nil)
	}
	h.HandleResponse(c, pedido, err)
	return nil
}

// HandlePendientesPorEmail devuelve los carritos pendientes de pago de un
// email, para retomarlos desde el storefront
func (h *PedidoHandler) HandlePendientesPorEmail(c fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Falta el email", common.StatusBadRequest, nil))
		return nil
	}

	pedidos, err := h.pedidoService.PendientesPorEmail(c.Context(), email)
	h.HandleResponse(c, pedidos, err)
	return nil
}

// HandleListar devuelve los pedidos del back-office, con filtro opcional
// por estado y límite (50 por defecto)
func (h *PedidoHandler) HandleListar(c fiber.Ctx) error {
	limite, err := strconv.ParseInt(c.Query("limite", "50"), 10, 64)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "El límite debe ser un número", common.StatusBadRequest, nil))
		return nil
	}

	pedidos, err := h.pedidoService.Listar(c.Context(), c.Query("estado"), limite)
	h.HandleResponse(c, pedidos, err)
	return nil
}

// HandleRegistrarPago anota el método de pago del pedido
func (h *PedidoHandler) HandleRegistrarPago(c fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return nil
	}

	var input ordersdto.RegistrarPagoInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	pedido, err := h.pedidoService.RegistrarPago(c.Context(), id, &input)
	if err == nil {
		logger.LogCRUD("update", "pedidos", id.Hex(), c, map[string]interface{}{"pago": input.Tipo})
	}
	h.HandleResponse(c, pedido, err)
	return nil
}

// HandleRegistrarEnvio guarda los datos del despacho del pedido
func (h *PedidoHandler) HandleRegistrarEnvio(c fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return nil
	}

	var input ordersdto.RegistrarEnvioInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	pedido, err := h.pedidoService.RegistrarEnvio(c.Context(), id, &input)
	if err == nil {
		logger.LogCRUD("update", "pedidos", id.Hex(), c, map[string]interface{}{"envio": input.Empresa})
	}
	h.HandleResponse(c, pedido, err)
	return nil
}

// HandleCambiarEstado mueve un pedido de estado y registra el cambio en el
// historial y en el log de auditoría
func (h *PedidoHandler) HandleCambiarEstado(c fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return nil
	}

	var input ordersdto.CambiarEstadoInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	pedido, estadoAnterior, err := h.pedidoService.CambiarEstado(c.Context(), id, &input, actorDesdeContexto(c))
	if err == nil {
		logger.LogEstado(id.Hex(), estadoAnterior, input.Estado, c)
	}
	h.HandleResponse(c, pedido, err)
	return nil
}

// HandleActualizarMontos ajusta envío, impuestos y descuento del pedido
func (h *PedidoHandler) HandleActualizarMontos(c fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return nil
	}

	var input ordersdto.ActualizarMontosInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	pedido, err := h.pedidoService.ActualizarMontos(c.Context(), id, &input)
	if err == nil {
		logger.LogCRUD("update", "pedidos", id.Hex(), c, map[string]interface{}{"total": pedido.Total})
	}
	h.HandleResponse(c, pedido, err)
	return nil
}

// HandleEnlaceWhatsApp arma el link de contacto por WhatsApp del pedido
func (h *PedidoHandler) HandleEnlaceWhatsApp(c fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return nil
	}

	pedido, err := h.pedidoService.FindOneById(c.Context(), id)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	enlace := pedido.EnlaceWhatsApp(global.MongoDB_ServerConfig.WhatsAppGreeting)
	if enlace == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeBusinessOperation, "El pedido no tiene teléfono de contacto", common.StatusBadRequest, nil))
		return nil
	}

	h.HandleResponse(c, map[string]interface{}{
		"pedidoId": pedido.ID.Hex(),
		"codigo":   pedido.Codigo(),
		"enlace":   enlace,
	}, nil)
	return nil
}

// HandleRecordatorios lista los carritos abandonados que esperan
// recordatorio, con su enlace de WhatsApp listo para enviar
func (h *PedidoHandler) HandleRecordatorios(c fiber.Ctx) error {
	window := global.MongoDB_ServerConfig.ReminderWindowHours
	pedidos, err := h.pedidoService.RecordatoriosPendientes(c.Context(), window)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	plantilla := global.MongoDB_ServerConfig.WhatsAppGreeting
	items := make([]map[string]interface{}, 0, len(pedidos))
	for i := range pedidos {
		items = append(items, map[string]interface{}{
			"pedido":  pedidos[i],
			"enlace":  pedidos[i].EnlaceWhatsApp(plantilla),
			"codigo":  pedidos[i].Codigo(),
			"enviado": pedidos[i].Recordatorio.Enviado,
		})
	}

	h.HandleResponse(c, items, nil)
	return nil
}

// HandleMarcarRecordatorio registra que el recordatorio del carrito fue
// enviado
func (h *PedidoHandler) HandleMarcarRecordatorio(c fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return nil
	}

	pedido, err := h.pedidoService.MarcarRecordatorioEnviado(c.Context(), id)
	if err == nil {
		logger.LogAction("recordatorio_enviado", c, map[string]interface{}{"pedido_id": id.Hex()})
	}
	h.HandleResponse(c, pedido, err)
	return nil
}

// HandleAgregarNota agrega una anotación interna al pedido
func (h *PedidoHandler) HandleAgregarNota(c fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return nil
	}

	var input ordersdto.NotaInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	pedido, err := h.pedidoService.AgregarNota(c.Context(), id, &input, actorDesdeContexto(c))
	h.HandleResponse(c, pedido, err)
	return nil
}

// HandleEliminarNota saca una anotación del pedido
func (h *PedidoHandler) HandleEliminarNota(c fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return nil
	}

	notaID := utility.String2ObjectID(c.Params("notaId"))
	if notaID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID de nota inválido", common.StatusBadRequest, nil))
		return nil
	}

	pedido, err := h.pedidoService.EliminarNota(c.Context(), id, notaID)
	h.HandleResponse(c, pedido, err)
	return nil
}

// HandleStats devuelve el resumen del tablero
func (h *PedidoHandler) HandleStats(c fiber.Ctx) error {
	stats, err := h.pedidoService.Stats(c.Context())
	h.HandleResponse(c, stats, err)
	return nil
}
