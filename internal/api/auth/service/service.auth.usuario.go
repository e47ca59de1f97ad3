// Package authsvc - service de usuarios del back-office.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/dto"
	models "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/models"
	basesvc "github.com/Ersonet/alfabolsas-ecommerce/internal/api/base/service"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/common"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/utility"
)

// UsuarioService contiene las operaciones sobre usuarios
type UsuarioService struct {
	*basesvc.BaseServiceMongoImpl[models.Usuario]
}

// NewUsuarioService crea un UsuarioService
func NewUsuarioService() (*UsuarioService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Usuarios)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de usuarios: %v", common.ErrNotFound)
	}

	return &UsuarioService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Usuario](collection),
	}, nil
}

// Crear da de alta un usuario con la contraseña hasheada con bcrypt
func (s *UsuarioService) Crear(ctx context.Context, input *authdto.UsuarioCreateInput) (*models.Usuario, error) {
	// El email debe ser único
	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(
			common.ErrCodeDatabase,
			fmt.Sprintf("Ya existe un usuario con el email '%s'", input.Email),
			common.StatusConflict,
			nil,
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "No se pudo procesar la contraseña", common.StatusInternalServerError, err)
	}

	usuario := models.Usuario{
		Nombre:   input.Nombre,
		Email:    input.Email,
		Password: string(hashed),
		Rol:      input.Rol,
		Tokens:   []models.Token{},
	}

	created, err := s.InsertOne(ctx, usuario)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": created.ID.Hex(),
		"email":   created.Email,
		"rol":     created.Rol,
	}).Info("Usuario creado")

	return &created, nil
}

// Login valida las credenciales y emite un JWT nuevo para el dispositivo
func (s *UsuarioService) Login(ctx context.Context, input *authdto.LoginInput) (*models.Usuario, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(
			common.ErrCodeAuthCredentials,
			"La cuenta está bloqueada: "+user.BlockNote,
			common.StatusForbidden,
			nil,
		)
	}

	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	ttl := time.Duration(global.MongoDB_ServerConfig.TokenTTLHours) * time.Hour
	tokenMap, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		user.ID.Hex(),
		strconv.FormatInt(currentTime, 16),
		strconv.Itoa(rdNumber),
		ttl,
	)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "No se pudo emitir el token", common.StatusInternalServerError, err)
	}

	user.Token = tokenMap["token"]

	// Un token por dispositivo: si el hwid ya tiene token se reemplaza
	idTokenExist := -1
	for i, t := range user.Tokens {
		if t.Hwid == input.Hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: input.Hwid, JwtToken: tokenMap["token"]})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	tokenUpdateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.UpdateById(ctx, user.ID, tokenUpdateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID.Hex(),
			"error":   err.Error(),
		}).Error("Login: error al guardar el token del usuario")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": updatedUser.ID.Hex(),
		"email":   updatedUser.Email,
	}).Info("Login exitoso")

	return &updatedUser, nil
}

// Logout elimina el token del dispositivo indicado por hwid
func (s *UsuarioService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.LogoutInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.UpdateById(ctx, userID, updateData)
	return err
}

// CambiarPassword cambia la contraseña del usuario validando la actual
func (s *UsuarioService) CambiarPassword(ctx context.Context, userID primitive.ObjectID, input *authdto.CambiarPasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.PasswordActual)); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "La contraseña actual no es correcta", common.StatusUnauthorized, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.PasswordNueva), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "No se pudo procesar la contraseña", common.StatusInternalServerError, err)
	}

	// Al cambiar la contraseña se invalidan todas las sesiones
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": string(hashed),
			"token":    "",
			"tokens":   []models.Token{},
		},
	}
	_, err = s.UpdateById(ctx, userID, updateData)
	return err
}

// Bloquear bloquea un usuario por email e invalida sus sesiones
func (s *UsuarioService) Bloquear(ctx context.Context, input *authdto.BloquearUsuarioInput) (*models.Usuario, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   true,
			"blockNote": input.Nota,
			"token":     "",
			"tokens":    []models.Token{},
		},
	}
	updated, err := s.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Desbloquear quita el bloqueo de un usuario por email
func (s *UsuarioService) Desbloquear(ctx context.Context, input *authdto.DesbloquearUsuarioInput) (*models.Usuario, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   false,
			"blockNote": "",
		},
	}
	updated, err := s.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AsegurarAdmin garantiza que exista el usuario administrador inicial.
// Si ya existe un usuario con ese email no hace nada.
func (s *UsuarioService) AsegurarAdmin(ctx context.Context, email string, password string) error {
	if email == "" || password == "" {
		return nil
	}

	exists, err := s.DocumentExists(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = s.Crear(ctx, &authdto.UsuarioCreateInput{
		Nombre:   "Administrador",
		Email:    email,
		Password: password,
		Rol:      models.RolAdmin,
	})
	if err != nil {
		return err
	}

	logrus.WithField("email", email).Info("Usuario administrador inicial creado")
	return nil
}
