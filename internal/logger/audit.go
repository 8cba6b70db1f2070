package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction là một bản ghi audit
type AuditAction struct {
	Action       string                 `json:"action"`        // Tên hành động (ví dụ: "auth_login", "order_place")
	UserID       string                 `json:"user_id"`       // ID người dùng thực hiện
	ResourceID   string                 `json:"resource_id"`   // ID tài nguyên bị ảnh hưởng
	ResourceType string                 `json:"resource_type"` // Loại tài nguyên (user, shop, item, order)
	IP           string                 `json:"ip"`
	UserAgent    string                 `json:"user_agent"`
	Details      map[string]interface{} `json:"details"`
	Timestamp    time.Time              `json:"timestamp"`
}

// LogAction ghi một hành động audit
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}

	audit := AuditAction{
		Action:    action,
		IP:        c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
		Details:   details,
		Timestamp: time.Now(),
	}

	if uid, ok := c.Locals("user_id").(string); ok {
		audit.UserID = uid
	}
	if rid, ok := details["resource_id"].(string); ok {
		audit.ResourceID = rid
	}
	if rt, ok := details["resource_type"].(string); ok {
		audit.ResourceType = rt
	}
	if requestID := RequestID(c); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":        audit.Action,
		"user_id":       audit.UserID,
		"resource_id":   audit.ResourceID,
		"resource_type": audit.ResourceType,
		"ip":            audit.IP,
		"user_agent":    audit.UserAgent,
		"details":       audit.Details,
		"timestamp":     audit.Timestamp,
	}).Info("Audit log")
}

// LogCRUD ghi các thao tác CRUD
func LogCRUD(operation string, resourceType string, resourceID string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["operation"] = operation
	details["resource_type"] = resourceType
	details["resource_id"] = resourceID

	LogAction("crud_"+operation, c, details)
}

// LogAuth ghi các thao tác authentication
func LogAuth(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["auth_action"] = action

	LogAction("auth_"+action, c, details)
}
