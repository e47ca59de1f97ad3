// Package cataloghdl - handlers del catálogo de productos.
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Ersonet/alfabolsas-ecommerce/internal/api/base/handler"
	catalogdto "github.com/Ersonet/alfabolsas-ecommerce/internal/api/catalog/dto"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/api/catalog/models"
	catalogsvc "github.com/Ersonet/alfabolsas-ecommerce/internal/api/catalog/service"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/common"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/logger"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/utility"
)

// ProductoHandler atiende los requests del catálogo
type ProductoHandler struct {
	*basehdl.BaseHandler[models.Producto, catalogdto.ProductoCreateInput, catalogdto.ProductoUpdateInput]
	productoService *catalogsvc.ProductoService
}

// NewProductoHandler crea una instancia de ProductoHandler
func NewProductoHandler() (*ProductoHandler, error) {
	productoService, err := catalogsvc.NewProductoService()
	if err != nil {
		return nil, fmt.Errorf("no se pudo crear el service de productos: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Producto, catalogdto.ProductoCreateInput, catalogdto.ProductoUpdateInput](productoService)
	return &ProductoHandler{
		BaseHandler:     baseHandler,
		productoService: productoService,
	}, nil
}

// HandleListarCatalogo devuelve el catálogo público de productos activos.
// Filtros opcionales por query: categoria y destacado=true.
func (h *ProductoHandler) HandleListarCatalogo(c fiber.Ctx) error {
	categoria := c.Query("categoria")
	soloDestacados := c.Query("destacado") == "true"

	productos, err := h.productoService.ListarActivos(c.Context(), categoria, soloDestacados)
	h.HandleResponse(c, productos, err)
	return nil
}

// HandleBuscarPorSlug devuelve un producto activo por su slug
func (h *ProductoHandler) HandleBuscarPorSlug(c fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Falta el slug del producto", common.StatusBadRequest, nil))
		return nil
	}

	producto, err := h.productoService.BuscarPorSlug(c.Context(), slug)
	h.HandleResponse(c, producto, err)
	return nil
}

// HandleCategorias devuelve las categorías del catálogo
func (h *ProductoHandler) HandleCategorias(c fiber.Ctx) error {
	categorias, err := h.productoService.Categorias(c.Context())
	h.HandleResponse(c, categorias, err)
	return nil
}

// HandleCotizar calcula el precio escalonado para una cantidad
func (h *ProductoHandler) HandleCotizar(c fiber.Ctx) error {
	id := utility.String2ObjectID(c.Params("id"))
	if id.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID de producto inválido", common.StatusBadRequest, nil))
		return nil
	}

	var input catalogdto.CotizarInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	cotizacion, err := h.productoService.Cotizar(c.Context(), id, &input)
	h.HandleResponse(c, cotizacion, err)
	return nil
}

// HandleCrear da de alta un producto
func (h *ProductoHandler) HandleCrear(c fiber.Ctx) error {
	var input catalogdto.ProductoCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	producto, err := h.productoService.Crear(c.Context(), &input)
	if err == nil {
		logger.LogCRUD("create", "productos", producto.ID.Hex(), c, nil)
	}
	h.HandleResponse(c, producto, err)
	return nil
}

// HandleActualizar modifica un producto existente
func (h *ProductoHandler) HandleActualizar(c fiber.Ctx) error {
	id := utility.String2ObjectID(c.Params("id"))
	if id.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID de producto inválido", common.StatusBadRequest, nil))
		return nil
	}

	var input catalogdto.ProductoUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	producto, err := h.productoService.Actualizar(c.Context(), id, &input)
	if err == nil {
		logger.LogCRUD("update", "productos", id.Hex(), c, nil)
	}
	h.HandleResponse(c, producto, err)
	return nil
}

// HandleDesactivar da de baja lógica un producto
func (h *ProductoHandler) HandleDesactivar(c fiber.Ctx) error {
	id := utility.String2ObjectID(c.Params("id"))
	if id.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID de producto inválido", common.StatusBadRequest, nil))
		return nil
	}

	producto, err := h.productoService.Desactivar(c.Context(), id)
	if err == nil {
		logger.LogCRUD("deactivate", "productos", id.Hex(), c, nil)
	}
	h.HandleResponse(c, producto, err)
	return nil
}

// HandleReactivar vuelve a publicar un producto
func (h *ProductoHandler) HandleReactivar(c fiber.Ctx) error {
	id := utility.String2ObjectID(c.Params("id"))
	if id.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID de producto inválido", common.StatusBadRequest, nil))
		return nil
	}

	producto, err := h.productoService.Reactivar(c.Context(), id)
	if err == nil {
		logger.LogCRUD("activate", "productos", id.Hex(), c, nil)
	}
	h.HandleResponse(c, producto, err)
	return nil
}
