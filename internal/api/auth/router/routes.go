package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/handler"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/models"
	basehdl "github.com/Ersonet/alfabolsas-ecommerce/internal/api/base/handler"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/api/middleware"
	apirouter "github.com/Ersonet/alfabolsas-ecommerce/internal/api/router"
)

// Register registra las rutas de autenticación y administración de usuarios
func Register(v1 fiber.Router, r *apirouter.Router) error {
	usuarioHandler, err := authhdl.NewUsuarioHandler()
	if err != nil {
		return err
	}
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return err
	}

	authMiddleware := middleware.AuthMiddleware("")
	adminMiddleware := middleware.AuthMiddleware(models.RolAdmin)

	// Health check (sin autenticación)
	v1.Get("/system/health", systemHandler.HandleHealth)

	// Login (público)
	v1.Post("/auth/login", usuarioHandler.HandleLogin)

	// Sesión del usuario autenticado
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authMiddleware}, usuarioHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", []fiber.Handler{authMiddleware}, usuarioHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/profile", []fiber.Handler{authMiddleware}, usuarioHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/password", []fiber.Handler{authMiddleware}, usuarioHandler.HandleCambiarPassword)

	// Administración de usuarios (solo admin)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/usuarios", "POST", "/", []fiber.Handler{adminMiddleware}, usuarioHandler.HandleCrearUsuario)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/usuarios", "POST", "/bloquear", []fiber.Handler{adminMiddleware}, usuarioHandler.HandleBloquearUsuario)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/usuarios", "POST", "/desbloquear", []fiber.Handler{adminMiddleware}, usuarioHandler.HandleDesbloquearUsuario)

	// CRUD de solo lectura sobre usuarios (solo admin)
	r.RegisterCRUDRoutes(v1, "/usuario", usuarioHandler, apirouter.ReadOnlyConfig, models.RolAdmin, models.RolAdmin)

	return nil
}
