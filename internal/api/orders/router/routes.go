package router

import (
	"github.com/gofiber/fiber/v3"

	authmodels "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/models"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/api/middleware"
	ordershdl "github.com/Ersonet/alfabolsas-ecommerce/internal/api/orders/handler"
	apirouter "github.com/Ersonet/alfabolsas-ecommerce/internal/api/router"
)

// Register registra las rutas de pedidos. El storefront crea pedidos y
// carritos sin autenticación; el seguimiento es del back-office (asesoras
// y admin).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	pedidoHandler, err := ordershdl.NewPedidoHandler()
	if err != nil {
		return err
	}

	staffMiddleware := middleware.AuthMiddleware(authmodels.RolAsesora)

	// Storefront (sin autenticación)
	v1.Post("/pedidos", pedidoHandler.HandleCrearPedido)
	v1.Post("/carritos", pedidoHandler.HandleGuardarCarrito)
	v1.Get("/pedidos/pendientes", pedidoHandler.HandlePendientesPorEmail)

	// Seguimiento del back-office (asesoras y admin)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/pedidos", "GET", "/", []fiber.Handler{staffMiddleware}, pedidoHandler.HandleListar)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/pedidos", "GET", "/stats", []fiber.Handler{staffMiddleware}, pedidoHandler.HandleStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/pedidos", "GET", "/recordatorios", []fiber.Handler{staffMiddleware}, pedidoHandler.HandleRecordatorios)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/pedidos", "POST", "/:id/estado", []fiber.Handler{staffMiddleware}, pedidoHandler.HandleCambiarEstado)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/pedidos", "PUT", "/:id/montos", []fiber.Handler{staffMiddleware}, pedidoHandler.HandleActualizarMontos)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/pedidos", "PUT", "/:id/pago", []fiber.Handler{staffMiddleware}, pedidoHandler.HandleRegistrarPago)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/pedidos", "PUT", "/:id/envio", []fiber.Handler{staffMiddleware}, pedidoHandler.HandleRegistrarEnvio)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/pedidos", "GET", "/:id/whatsapp", []fiber.Handler{staffMiddleware}, pedidoHandler.HandleEnlaceWhatsApp)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/pedidos", "POST", "/:id/recordatorio", []fiber.Handler{staffMiddleware}, pedidoHandler.HandleMarcarRecordatorio)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/pedidos", "POST", "/:id/notas", []fiber.Handler{staffMiddleware}, pedidoHandler.HandleAgregarNota)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/pedidos", "DELETE", "/:id/notas/:notaId", []fiber.Handler{staffMiddleware}, pedidoHandler.HandleEliminarNota)

	// CRUD genérico de consulta para el back-office; el borrado queda
	// reservado al admin
	r.RegisterCRUDRoutes(v1, "/pedido", pedidoHandler, apirouter.ReadOnlyConfig, "", authmodels.RolAdmin)

	return nil
}
