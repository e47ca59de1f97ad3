package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Códigos de estado HTTP
const (
	// Éxito (2xx)
	StatusOK        = 200 // Operación exitosa
	StatusCreated   = 201 // Recurso creado
	StatusAccepted  = 202 // Solicitud aceptada
	StatusNoContent = 204 // Éxito sin contenido

	// Errores del cliente (4xx)
	StatusBadRequest       = 400 // Solicitud inválida
	StatusUnauthorized     = 401 // Sin autenticar
	StatusForbidden        = 403 // Sin permisos
	StatusNotFound         = 404 // Recurso no encontrado
	StatusMethodNotAllowed = 405 // Método HTTP no soportado
	StatusConflict         = 409 // Conflicto de datos
	StatusTooManyRequests  = 429 // Demasiadas solicitudes

	// Errores del servidor (5xx)
	StatusInternalServerError = 500 // Error interno
	StatusNotImplemented      = 501 // No implementado
	StatusServiceUnavailable  = 503 // Servicio no disponible
)

// Mensajes de respuesta
const (
	// Éxito
	MsgSuccess = "Operación exitosa"
	MsgCreated = "Creado correctamente"

	// Errores
	MsgBadRequest         = "Solicitud inválida"
	MsgUnauthorized       = "Debe iniciar sesión"
	MsgForbidden          = "No tiene permisos para esta operación"
	MsgNotFound           = "Recurso no encontrado"
	MsgConflict           = "Conflicto de datos"
	MsgTooManyRequests    = "Demasiadas solicitudes"
	MsgInternalError      = "Error interno del sistema"
	MsgServiceUnavailable = "Servicio no disponible"

	// Token
	MsgTokenMissing = "Falta el token de autenticación"
	MsgTokenInvalid = "Token inválido"
	MsgTokenExpired = "El token ha expirado"

	// Validación
	MsgValidationError = "Datos inválidos"
	MsgDatabaseError   = "Error al interactuar con la base de datos"
	MsgInvalidFormat   = "Formato de datos inválido"
)

// ErrorCode define un código de error detallado
type ErrorCode struct {
	Code        string // Código (ej: AUTH_001)
	Category    string // Categoría (ej: Authentication)
	SubCategory string // Subcategoría (ej: Token)
	Description string // Descripción
}

// Códigos de error organizados por familia
var (
	// Errores de sistema (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Error interno del sistema",
	}

	// Errores de autenticación (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Error general de autenticación",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Error relacionado con el token",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Error de credenciales",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "Error relacionado con el rol del usuario",
	}

	// Errores de validación (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Error general de validación",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Error en los datos de entrada",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Error de formato de datos",
	}

	// Errores de base de datos (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Error general de base de datos",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Error de conexión a la base de datos",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Error de consulta a la base de datos",
	}

	// Errores de negocio (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Error general de lógica de negocio",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Error de estado de negocio",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Error de operación de negocio",
	}
)

// Error define la estructura de error del sistema
type Error struct {
	Code       ErrorCode // Código detallado
	Message    string    // Mensaje del error
	StatusCode int       // Código HTTP
	Details    any       // Detalles adicionales
}

// Error devuelve el mensaje del error
func (e *Error) Error() string {
	return e.Message
}

// Is compara con el error destino (soporta errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError crea un error nuevo con la información completa
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Errores predefinidos
var (
	// Autenticación
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Credenciales incorrectas", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "La sesión ha expirado", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Token inválido", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Falta el token de autenticación", StatusUnauthorized, nil)
	ErrUserBlocked        = NewError(ErrCodeAuthCredentials, "El usuario está bloqueado", StatusForbidden, nil)
	ErrUserNotFound       = NewError(ErrCodeAuthCredentials, "No se encontró el usuario", StatusNotFound, nil)
	ErrForbiddenRole      = NewError(ErrCodeAuthRole, "El rol no permite esta operación", StatusForbidden, nil)

	// Validación
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Datos de entrada inválidos", StatusBadRequest, nil)
	ErrInvalidEmail  = NewError(ErrCodeValidationInput, "El email no tiene un formato válido", StatusBadRequest, nil)
	ErrWeakPassword  = NewError(ErrCodeValidationInput, "La contraseña es demasiado débil", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Formato de datos inválido", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Falta información obligatoria", StatusBadRequest, nil)

	// Base de datos
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "No se encontraron datos", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "El dato ya existe", StatusConflict, nil)
	ErrConstraint = NewError(ErrCodeDatabaseQuery, "Violación de restricción de datos", StatusBadRequest, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Error de conexión a la base de datos", StatusServiceUnavailable, nil)

	// Negocio
	ErrInvalidState       = NewError(ErrCodeBusinessState, "Estado inválido", StatusBadRequest, nil)
	ErrInvalidTransition  = NewError(ErrCodeBusinessState, "Transición de estado no permitida", StatusBadRequest, nil)
	ErrInvalidOperation   = NewError(ErrCodeBusinessOperation, "Operación inválida", StatusBadRequest, nil)
	ErrProductUnavailable = NewError(ErrCodeBusinessOperation, "El producto no está disponible", StatusBadRequest, nil)
)

// Mensajes de errores de MongoDB
const (
	MsgMongoConnection = "Error de conexión a MongoDB"
	MsgMongoNetwork    = "Error de red al conectar a MongoDB"
	MsgMongoTimeout    = "La conexión a MongoDB excedió el tiempo de espera"
	MsgMongoAuth       = "Error de autenticación en MongoDB"
	MsgMongoQuery      = "Error de consulta en MongoDB"
	MsgMongoWrite      = "Error de escritura en MongoDB"
	MsgMongoDuplicate  = "Dato duplicado en MongoDB"
	MsgMongoSystem     = "Error de sistema en MongoDB"
)

// Errores específicos de MongoDB
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, MsgMongoConnection, StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, MsgMongoNetwork, StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, MsgMongoTimeout, StatusServiceUnavailable, nil)
	ErrMongoAuth       = NewError(ErrCodeAuth, MsgMongoAuth, StatusUnauthorized, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, MsgMongoQuery, StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, MsgMongoWrite, StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, MsgMongoDuplicate, StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, MsgMongoSystem, StatusInternalServerError, nil)
)

// ConvertMongoError convierte un error del driver de MongoDB a un error del sistema.
// Los errores que ya pertenecen al sistema se devuelven sin modificar.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound nunca se convierte, se propaga tal cual
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if sysErr, ok := err.(*Error); ok {
		return sysErr
	}

	// Errores de comando de MongoDB, agrupados por rango de código
	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return ErrMongoAuth
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		case mongoErr.Code >= 500:
			return ErrMongoSystem
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
