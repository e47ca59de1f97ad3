package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authsvc "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/service"
	models "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/models"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/common"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/logger"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/utility"
)

// AuthManager administra la autenticación y la verificación de roles
type AuthManager struct {
	UsuarioCRUD *authsvc.UsuarioService
	Cache       *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager devuelve la instancia única de AuthManager (singleton)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	usuarioService, err := authsvc.NewUsuarioService()
	if err != nil {
		return nil, fmt.Errorf("no se pudo crear el service de usuarios: %v", err)
	}
	newManager.UsuarioCRUD = usuarioService

	// Cache de sesiones: 5 minutos de vida, limpieza cada 10 minutos
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// buscarUsuarioPorToken busca el usuario dueño de un token, con cache
func (am *AuthManager) buscarUsuarioPorToken(ctx context.Context, token string) (models.Usuario, error) {
	cacheKey := "token_user:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(models.Usuario), nil
	}

	// Primero por el campo "token" (el más reciente, se renueva en cada login)
	user, err := am.UsuarioCRUD.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		// Después dentro del arreglo "tokens" (un token por dispositivo)
		user, err = am.UsuarioCRUD.FindOne(ctx, bson.M{"tokens.jwtToken": token}, nil)
		if err != nil {
			return models.Usuario{}, err
		}
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// AuthMiddleware middleware de autenticación para Fiber.
// Si requiredRol es vacío solo exige un token válido; si no, exige además
// que el usuario tenga ese rol. El rol admin pasa siempre.
func AuthMiddleware(requiredRol string) fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Falta el header Authorization")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		user, err := authManager.buscarUsuarioPorToken(context.Background(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("Token no encontrado en la base de datos")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"La cuenta está bloqueada: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Usuario disponible para los handlers
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		c.Locals("user_rol", user.Rol)

		// Sin rol requerido: alcanza con estar autenticado
		if requiredRol == "" {
			return c.Next()
		}

		// El admin tiene acceso a todo
		if user.EsAdmin() || user.Rol == requiredRol {
			return c.Next()
		}

		logger.GetAppLogger().WithFields(logrus.Fields{
			"user_id":      user.ID.Hex(),
			"user_rol":     user.Rol,
			"required_rol": requiredRol,
			"path":         c.Path(),
		}).Warn("El usuario no tiene el rol requerido")
		HandleErrorResponse(c, common.ErrForbiddenRole)
		return nil
	}
}
