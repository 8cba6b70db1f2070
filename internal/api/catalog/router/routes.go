// Package router đăng ký các route danh mục và sản phẩm.
package router

import (
	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/tanavishali52/BE-saleman/internal/api/catalog/handler"
	apirouter "github.com/tanavishali52/BE-saleman/internal/api/router"
)

// Register trả về hàm đăng ký route catalog lên v1.
func Register(h *cataloghdl.CatalogHandler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		admin := r.AdminOnly()
		staff := r.Staff()

		// Danh mục
		apirouter.RegisterRouteWithMiddleware(v1, "/category", "POST", "", admin, h.HandleCreateCategory)
		apirouter.RegisterRouteWithMiddleware(v1, "/category", "GET", "", staff, h.HandleListCategories)

		// Sản phẩm
		apirouter.RegisterRouteWithMiddleware(v1, "/item", "POST", "", admin, h.HandleCreateItem)
		apirouter.RegisterRouteWithMiddleware(v1, "/item", "GET", "", staff, h.HandleListItems)
		apirouter.RegisterRouteWithMiddleware(v1, "/item", "GET", "/:id", staff, h.HandleGetItem)
		apirouter.RegisterRouteWithMiddleware(v1, "/item", "PUT", "/:id", admin, h.HandleUpdateItem)
		apirouter.RegisterRouteWithMiddleware(v1, "/item", "DELETE", "/:id", admin, h.HandleDeleteItem)
		return nil
	}
}
