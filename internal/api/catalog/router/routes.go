package router

import (
	"github.com/gofiber/fiber/v3"

	authmodels "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/models"
	cataloghdl "github.com/Ersonet/alfabolsas-ecommerce/internal/api/catalog/handler"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/api/middleware"
	apirouter "github.com/Ersonet/alfabolsas-ecommerce/internal/api/router"
)

// Register registra las rutas del catálogo. El storefront consulta sin
// autenticación; las altas y modificaciones son solo del back-office admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productoHandler, err := cataloghdl.NewProductoHandler()
	if err != nil {
		return err
	}

	adminMiddleware := middleware.AuthMiddleware(authmodels.RolAdmin)

	// Catálogo público
	v1.Get("/productos", productoHandler.HandleListarCatalogo)
	v1.Get("/productos/categorias", productoHandler.HandleCategorias)
	v1.Get("/productos/slug/:slug", productoHandler.HandleBuscarPorSlug)
	v1.Post("/productos/:id/cotizar", productoHandler.HandleCotizar)

	// Administración del catálogo (solo admin)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/productos", "POST", "/", []fiber.Handler{adminMiddleware}, productoHandler.HandleCrear)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/productos", "PUT", "/:id", []fiber.Handler{adminMiddleware}, productoHandler.HandleActualizar)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/productos", "POST", "/:id/desactivar", []fiber.Handler{adminMiddleware}, productoHandler.HandleDesactivar)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/productos", "POST", "/:id/reactivar", []fiber.Handler{adminMiddleware}, productoHandler.HandleReactivar)

	// CRUD genérico para el back-office (lectura para asesoras, escritura admin)
	r.RegisterCRUDRoutes(v1, "/producto", productoHandler, apirouter.ReadOnlyConfig, "", authmodels.RolAdmin)

	return nil
}
