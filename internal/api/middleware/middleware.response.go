package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Ersonet/alfabolsas-ecommerce/internal/common"
)

// JSONResponse devuelve un response JSON con Content-Type: application/json; charset=utf-8.
// El charset explícito garantiza que los acentos y la ñ lleguen bien al cliente.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse responde un error al cliente con el formato estándar.
// Está separado del package de handlers para evitar un import cycle.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
		return
	}
	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeDatabase.Code,
		"message": err.Error(),
		"status":  "error",
	})
}
