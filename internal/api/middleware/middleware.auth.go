package middleware

import (
	"context"
	"strings"

	models "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// Authenticator giải mã access token và trả về người dùng đang thao tác
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (models.Principal, error)
}

// bearerToken tách token từ header "Authorization: Bearer <token>"
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || scheme != "Bearer" {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthMiddleware xác thực access token. Principal được gắn vào context của request,
// user_id được lưu vào Locals để ghi log.
func AuthMiddleware(auth Authenticator) fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Thiếu hoặc sai định dạng Authorization header")
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}

		principal, err := auth.Authenticate(c.Context(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Xác thực thất bại")
			return HandleErrorResponse(c, err)
		}

		c.SetContext(models.WithPrincipal(c.Context(), principal))
		c.Locals("user_id", principal.ID.Hex())
		c.Locals("user_role", principal.Role.String())
		return c.Next()
	}
}

// RequireRoles chỉ cho phép các role trong danh sách đi tiếp. Phải đặt sau AuthMiddleware.
func RequireRoles(roles ...models.Role) fiber.Handler {
	allowed := models.NewRoleSet(roles...)

	return func(c fiber.Ctx) error {
		principal, ok := models.PrincipalFromContext(c.Context())
		if !ok || !allowed.Allows(principal.Role) {
			logger.WithRequest(c).WithField("role", principal.Role).Warn("⛔ [AUTH] Không đủ quyền truy cập")
			return HandleErrorResponse(c, common.ErrAccessDenied)
		}
		return c.Next()
	}
}
