// Package uploadhdl - subida de archivos del back-office (imágenes de
// productos y comprobantes).
package uploadhdl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	basehdl "github.com/Ersonet/alfabolsas-ecommerce/internal/api/base/handler"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/common"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/logger"
)

// extensionesPermitidas son los tipos de archivo aceptados
var extensionesPermitidas = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".svg":  true,
	".pdf":  true,
}

// tamanoMaximo es el límite por archivo (10 MB)
const tamanoMaximo = 10 << 20

// UploadHandler atiende la subida de archivos
type UploadHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
}

// NewUploadHandler crea una instancia de UploadHandler y asegura que el
// directorio de subida exista
func NewUploadHandler() (*UploadHandler, error) {
	dir := global.MongoDB_ServerConfig.UploadDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("no se pudo crear el directorio de subida %s: %v", dir, err)
	}
	return &UploadHandler{
		BaseHandler: &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
	}, nil
}

// HandleUpload guarda el archivo subido con un nombre aleatorio y devuelve
// su URL pública. El nombre original del cliente nunca toca el filesystem.
func (h *UploadHandler) HandleUpload(c fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Falta el archivo en el campo 'file'", common.StatusBadRequest, err))
		return nil
	}

	if file.Size > tamanoMaximo {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "El archivo supera el tamaño máximo de 10 MB", common.StatusBadRequest, nil))
		return nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extensionesPermitidas[ext] {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Tipo de archivo no permitido: "+ext, common.StatusBadRequest, nil))
		return nil
	}

	nombre := uuid.New().String() + ext
	destino := filepath.Join(global.MongoDB_ServerConfig.UploadDir, nombre)

	if err := c.SaveFile(file, destino); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "No se pudo guardar el archivo", common.StatusInternalServerError, err))
		return nil
	}

	logger.LogAction("upload", c, map[string]interface{}{
		"archivo": nombre,
		"bytes":   file.Size,
	})

	h.HandleResponse(c, map[string]interface{}{
		"archivo": nombre,
		"url":     strings.TrimRight(global.MongoDB_ServerConfig.UploadBaseURL, "/") + "/" + nombre,
		"bytes":   file.Size,
	}, nil)
	return nil
}

// HandleDelete borra un archivo subido por su nombre
func (h *UploadHandler) HandleDelete(c fiber.Ctx) error {
	nombre := c.Params("archivo")
	// El nombre debe ser un archivo plano generado por el upload, sin rutas
	if nombre == "" || nombre != filepath.Base(nombre) || strings.Contains(nombre, "..") {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Nombre de archivo inválido", common.StatusBadRequest, nil))
		return nil
	}

	destino := filepath.Join(global.MongoDB_ServerConfig.UploadDir, nombre)
	if err := os.Remove(destino); err != nil {
		if os.IsNotExist(err) {
			h.HandleResponse(c, nil, common.ErrNotFound)
			return nil
		}
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "No se pudo borrar el archivo", common.StatusInternalServerError, err))
		return nil
	}

	logger.LogAction("upload_delete", c, map[string]interface{}{"archivo": nombre})
	h.HandleResponse(c, map[string]interface{}{"archivo": nombre}, nil)
	return nil
}
