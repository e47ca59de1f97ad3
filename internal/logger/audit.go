package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction describe una acción registrada en el log de auditoría
type AuditAction struct {
	Action       string                 `json:"action"`        // Nombre de la acción (ej: "pedido_cambiar_estado")
	UserID       string                 `json:"user_id"`       // ID del usuario que la ejecutó
	ResourceID   string                 `json:"resource_id"`   // ID del recurso afectado
	ResourceType string                 `json:"resource_type"` // Tipo de recurso (ej: "pedido", "producto")
	IP           string                 `json:"ip"`            // Dirección IP
	UserAgent    string                 `json:"user_agent"`    // User agent
	Details      map[string]interface{} `json:"details"`       // Detalles adicionales
	Timestamp    time.Time              `json:"timestamp"`     // Momento de la acción
}

// LogAction registra una acción en el log de auditoría
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	auditLogger := GetAuditLogger()

	if details == nil {
		details = make(map[string]interface{})
	}

	audit := AuditAction{
		Action:    action,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Details:   details,
		Timestamp: time.Now(),
	}

	if userID := c.Locals("user_id"); userID != nil {
		if uid, ok := userID.(string); ok {
			audit.UserID = uid
		}
	}

	if requestID := c.Get("X-Request-ID"); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	auditLogger.WithFields(logrus.Fields{
		"action":        audit.Action,
		"user_id":       audit.UserID,
		"resource_id":   audit.ResourceID,
		"resource_type": audit.ResourceType,
		"ip":            audit.IP,
		"user_agent":    audit.UserAgent,
		"details":       audit.Details,
		"timestamp":     audit.Timestamp,
	}).Info("Registro de auditoría")
}

// LogCRUD registra una operación CRUD
func LogCRUD(operation string, resourceType string, resourceID string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["operation"] = operation
	details["resource_type"] = resourceType
	details["resource_id"] = resourceID

	LogAction("crud_"+operation, c, details)
}

// LogAuth registra una operación de autenticación
func LogAuth(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["auth_action"] = action

	LogAction("auth_"+action, c, details)
}

// LogEstado registra un cambio de estado de un pedido
func LogEstado(pedidoID string, estadoAnterior string, estadoNuevo string, c fiber.Ctx) {
	LogAction("pedido_cambiar_estado", c, map[string]interface{}{
		"pedido_id":       pedidoID,
		"estado_anterior": estadoAnterior,
		"estado_nuevo":    estadoNuevo,
	})
}
