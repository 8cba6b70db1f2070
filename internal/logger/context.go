package logger

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
)

// ContextKey là type cho context keys
type ContextKey string

const (
	// RequestIDKey là key cho request ID trong context
	RequestIDKey ContextKey = "requestID"
	// UserIDKey là key cho user ID trong context
	UserIDKey ContextKey = "userID"
)

// ContextWithRequest gắn request ID và user ID vào context để log ở tầng service
func ContextWithRequest(ctx context.Context, requestID, userID string) context.Context {
	if requestID != "" {
		ctx = context.WithValue(ctx, RequestIDKey, requestID)
	}
	if userID != "" {
		ctx = context.WithValue(ctx, UserIDKey, userID)
	}
	return ctx
}

// WithContext trả về logger entry kèm các field lấy từ context
func WithContext(ctx context.Context) *logrus.Entry {
	entry := GetAppLogger().WithContext(ctx)
	if ctx == nil {
		return entry
	}
	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		entry = entry.WithField("request_id", requestID)
	}
	if userID := ctx.Value(UserIDKey); userID != nil {
		entry = entry.WithField("user_id", userID)
	}
	return entry
}

// RequestID lấy request ID từ middleware requestid, fallback sang header
func RequestID(c fiber.Ctx) string {
	if rid := requestid.FromContext(c); rid != "" {
		return rid
	}
	if rid := c.Get(fiber.HeaderXRequestID); rid != "" {
		return rid
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

// WithRequest trả về logger entry với thông tin request từ Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})
	if requestID := RequestID(c); requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		entry = entry.WithField("user_id", userID)
	}
	return entry
}

// WithFields trả về logger entry với các fields bổ sung
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields(fields))
}

// WithError trả về logger entry với error
func WithError(err error) *logrus.Entry {
	return GetAppLogger().WithError(err)
}

// WithModule trả về logger entry với module name (auth, order, shop, catalog...)
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// WithModuleContext kết hợp WithContext và module
func WithModuleContext(ctx context.Context, module string) *logrus.Entry {
	return WithContext(ctx).WithField("module", module)
}

// WithCollection trả về logger entry với collection name
func WithCollection(collection string) *logrus.Entry {
	return GetAppLogger().WithField("collection", collection)
}
