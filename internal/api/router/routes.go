package router

import (
	"fmt"

	models "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	"github.com/tanavishali52/BE-saleman/internal/api/middleware"

	"github.com/gofiber/fiber/v3"
)

// Router quản lý việc định tuyến cho API
type Router struct {
	app  *fiber.App
	auth fiber.Handler
}

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router. auth là middleware xác thực dùng chung cho mọi route cần đăng nhập.
func NewRouter(app *fiber.App, auth middleware.Authenticator) *Router {
	return &Router{
		app:  app,
		auth: middleware.AuthMiddleware(auth),
	}
}

// Authenticated trả về chuỗi middleware chỉ yêu cầu đăng nhập
func (r *Router) Authenticated() []fiber.Handler {
	return []fiber.Handler{r.auth}
}

// Roles trả về chuỗi middleware yêu cầu đăng nhập và thuộc một trong các role
func (r *Router) Roles(roles ...models.Role) []fiber.Handler {
	return []fiber.Handler{r.auth, middleware.RequireRoles(roles...)}
}

// AdminOnly là viết tắt của Roles(RoleAdmin)
func (r *Router) AdminOnly() []fiber.Handler {
	return r.Roles(models.RoleAdmin)
}

// Staff cho phép cả admin và salesman
func (r *Router) Staff() []fiber.Handler {
	return r.Roles(models.RoleAdmin, models.RoleSalesman)
}

// RegisterRouteWithMiddleware đăng ký route kèm chuỗi middleware riêng của route đó.
// Middleware chạy theo thứ tự truyền vào, trước handler, và chỉ áp dụng cho đúng method + path này
// (không dùng group.Use vì Use áp cho mọi route cùng prefix).
//
// Ví dụ:
//
//	RegisterRouteWithMiddleware(v1, "/shop", "POST", "", r.AdminOnly(), h.HandleCreate)
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)

	chain := make([]fiber.Handler, 0, len(middlewares)+1)
	chain = append(chain, middlewares...)
	chain = append(chain, handler)

	switch method {
	case fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		routeGroup.Add([]string{method}, path, chain[0], chain[1:]...)
	default:
		panic(fmt.Sprintf("method không được hỗ trợ: %s", method))
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng. Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, auth middleware.Authenticator, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app, auth)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
