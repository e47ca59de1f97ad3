// Package authhdl - handlers del domain auth.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/dto"
	authsvc "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/service"
	basehdl "github.com/Ersonet/alfabolsas-ecommerce/internal/api/base/handler"
	models "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/models"
	basesvc "github.com/Ersonet/alfabolsas-ecommerce/internal/api/base/service"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/common"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/logger"
)

// UsuarioHandler atiende los requests de autenticación y gestión de usuarios
type UsuarioHandler struct {
	*basehdl.BaseHandler[models.Usuario, authdto.UsuarioCreateInput, authdto.UsuarioUpdateInput]
	usuarioService *authsvc.UsuarioService
}

// NewUsuarioHandler crea una instancia de UsuarioHandler
func NewUsuarioHandler() (*UsuarioHandler, error) {
	usuarioService, err := authsvc.NewUsuarioService()
	if err != nil {
		return nil, fmt.Errorf("no se pudo crear el service de usuarios: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Usuario, authdto.UsuarioCreateInput, authdto.UsuarioUpdateInput](usuarioService)
	return &UsuarioHandler{
		BaseHandler:    baseHandler,
		usuarioService: usuarioService,
	}, nil
}

// limpiarUsuario borra los campos sensibles antes de responder
func limpiarUsuario(u *models.Usuario) {
	u.Password = ""
	u.Tokens = nil
}

// HandleLogin procesa el login con email y contraseña
func (h *UsuarioHandler) HandleLogin(c fiber.Ctx) error {
	var input authdto.LoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.usuarioService.Login(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAuth("login", c, map[string]interface{}{"user_id": user.ID.Hex()})

	limpiarUsuario(user)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleLogout procesa el logout del dispositivo actual
func (h *UsuarioHandler) HandleLogout(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Usuario no autenticado", common.StatusUnauthorized, nil))
		return nil
	}

	var input authdto.LogoutInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID de usuario inválido", common.StatusBadRequest, err))
		return nil
	}

	err = h.usuarioService.Logout(c.Context(), objID, &input)
	if err == nil {
		logger.LogAuth("logout", c, nil)
	}
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleGetProfile devuelve el perfil del usuario autenticado
func (h *UsuarioHandler) HandleGetProfile(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Usuario no autenticado", common.StatusUnauthorized, nil))
		return nil
	}

	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID de usuario inválido", common.StatusBadRequest, err))
		return nil
	}

	user, err := h.usuarioService.FindOneById(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	limpiarUsuario(&user)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleUpdateProfile actualiza el nombre del usuario autenticado
func (h *UsuarioHandler) HandleUpdateProfile(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Usuario no autenticado", common.StatusUnauthorized, nil))
		return nil
	}

	var input authdto.UsuarioUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID de usuario inválido", common.StatusBadRequest, err))
		return nil
	}

	// Desde el perfil propio solo se puede cambiar el nombre, nunca el rol
	update := &basesvc.UpdateData{Set: map[string]interface{}{"nombre": input.Nombre}}
	updatedUser, err := h.usuarioService.UpdateById(c.Context(), objID, update)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	limpiarUsuario(&updatedUser)
	h.HandleResponse(c, updatedUser, nil)
	return nil
}

// HandleCambiarPassword cambia la contraseña del usuario autenticado
func (h *UsuarioHandler) HandleCambiarPassword(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Usuario no autenticado", common.StatusUnauthorized, nil))
		return nil
	}

	var input authdto.CambiarPasswordInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID de usuario inválido", common.StatusBadRequest, err))
		return nil
	}

	err = h.usuarioService.CambiarPassword(c.Context(), objID, &input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleCrearUsuario da de alta un usuario del back-office (solo admin)
func (h *UsuarioHandler) HandleCrearUsuario(c fiber.Ctx) error {
	var input authdto.UsuarioCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.usuarioService.Crear(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("create", "usuarios", user.ID.Hex(), c, nil)

	limpiarUsuario(user)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleBloquearUsuario bloquea un usuario por email (solo admin)
func (h *UsuarioHandler) HandleBloquearUsuario(c fiber.Ctx) error {
	var input authdto.BloquearUsuarioInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.usuarioService.Bloquear(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	limpiarUsuario(user)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleDesbloquearUsuario desbloquea un usuario por email (solo admin)
func (h *UsuarioHandler) HandleDesbloquearUsuario(c fiber.Ctx) error {
	var input authdto.DesbloquearUsuarioInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.usuarioService.Desbloquear(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	limpiarUsuario(user)
	h.HandleResponse(c, user, nil)
	return nil
}
