// Package router đăng ký các route cửa hàng.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "github.com/tanavishali52/BE-saleman/internal/api/router"
	shophdl "github.com/tanavishali52/BE-saleman/internal/api/shop/handler"
)

// Register trả về hàm đăng ký route cửa hàng lên v1.
func Register(shopHandler *shophdl.ShopHandler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		admin := r.AdminOnly()
		staff := r.Staff()

		apirouter.RegisterRouteWithMiddleware(v1, "/shop", "POST", "", admin, shopHandler.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(v1, "/shop", "GET", "", staff, shopHandler.HandleList)
		apirouter.RegisterRouteWithMiddleware(v1, "/shop", "GET", "/:id", staff, shopHandler.HandleGet)
		apirouter.RegisterRouteWithMiddleware(v1, "/shop", "PUT", "/:id", admin, shopHandler.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(v1, "/shop", "DELETE", "/:id", admin, shopHandler.HandleDelete)
		apirouter.RegisterRouteWithMiddleware(v1, "/shop", "PATCH", "/:id/status", admin, shopHandler.HandleSetStatus)
		return nil
	}
}
