// Package router đăng ký các route thuộc domain auth: đăng nhập, token, quên mật khẩu, quản lý salesman.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/tanavishali52/BE-saleman/internal/api/auth/handler"
	apirouter "github.com/tanavishali52/BE-saleman/internal/api/router"
)

// Register trả về hàm đăng ký route auth lên v1.
func Register(authHandler *authhdl.AuthHandler, salesmanHandler *authhdl.SalesmanHandler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		public := []fiber.Handler{}

		// Public
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/signup", public, authHandler.HandleSignup)
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/login", public, authHandler.HandleLogin)
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/refresh-token", public, authHandler.HandleRefreshToken)
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", public, authHandler.HandleLogout)
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/forgot-password", public, authHandler.HandleForgotPassword)
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/verify-code", public, authHandler.HandleVerifyCode)
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/reset-password", public, authHandler.HandleResetPassword)

		// Chỉ cần đăng nhập
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/change-password", r.Authenticated(), authHandler.HandleChangePassword)
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", r.Authenticated(), authHandler.HandleGetProfile)

		// Admin quản lý salesman
		admin := r.AdminOnly()
		apirouter.RegisterRouteWithMiddleware(v1, "/admin", "POST", "/create-salesman", admin, salesmanHandler.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/salesman", admin, salesmanHandler.HandleList)
		apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/salesman/:id", admin, salesmanHandler.HandleGet)
		apirouter.RegisterRouteWithMiddleware(v1, "/admin", "PUT", "/salesman/:id", admin, salesmanHandler.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(v1, "/admin", "DELETE", "/salesman/:id", admin, salesmanHandler.HandleDelete)
		apirouter.RegisterRouteWithMiddleware(v1, "/admin", "PATCH", "/salesman/:id/status", admin, salesmanHandler.HandleSetStatus)

		return nil
	}
}
