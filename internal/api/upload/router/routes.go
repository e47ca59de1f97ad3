package router

import (
	"github.com/gofiber/fiber/v3"

	authmodels "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/models"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/api/middleware"
	apirouter "github.com/Ersonet/alfabolsas-ecommerce/internal/api/router"
	uploadhdl "github.com/Ersonet/alfabolsas-ecommerce/internal/api/upload/handler"
)

// Register registra las rutas de subida de archivos (solo back-office)
func Register(v1 fiber.Router, r *apirouter.Router) error {
	uploadHandler, err := uploadhdl.NewUploadHandler()
	if err != nil {
		return err
	}

	staffMiddleware := middleware.AuthMiddleware(authmodels.RolAsesora)

	apirouter.RegisterRouteWithMiddleware(v1, "/upload", "POST", "/", []fiber.Handler{staffMiddleware}, uploadHandler.HandleUpload)
	apirouter.RegisterRouteWithMiddleware(v1, "/upload", "DELETE", "/:archivo", []fiber.Handler{staffMiddleware}, uploadHandler.HandleDelete)

	return nil
}
