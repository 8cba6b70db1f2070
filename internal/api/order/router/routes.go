// Package router đăng ký các route đơn hàng.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "github.com/tanavishali52/BE-saleman/internal/api/router"
	orderhdl "github.com/tanavishali52/BE-saleman/internal/api/order/handler"
)

// Register trả về hàm đăng ký route đơn hàng lên v1.
func Register(orderHandler *orderhdl.OrderHandler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		admin := r.AdminOnly()
		staff := r.Staff()

		apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "", staff, orderHandler.HandlePlaceOrder)
		apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/mine", staff, orderHandler.HandleListMine)
		apirouter.RegisterRouteWithMiddleware(v1, "", "GET", "/payment-types", staff, orderHandler.HandlePaymentTypes)

		apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/orders", admin, orderHandler.HandleList)
		apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/order/:id", admin, orderHandler.HandleGet)
		apirouter.RegisterRouteWithMiddleware(v1, "/admin", "PATCH", "/order/:id/payment", admin, orderHandler.HandleRecordPayment)
		apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/shop-orders-summary", admin, orderHandler.HandleShopOrdersSummary)
		return nil
	}
}
