// Package orderhdl chứa handler HTTP cho đơn hàng.
package orderhdl

import (
	basehdl "github.com/tanavishali52/BE-saleman/internal/api/base/handler"
	orderdto "github.com/tanavishali52/BE-saleman/internal/api/order/dto"
	models "github.com/tanavishali52/BE-saleman/internal/api/order/models"
	ordersvc "github.com/tanavishali52/BE-saleman/internal/api/order/service"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler xử lý các route đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo OrderHandler
func NewOrderHandler(orderService *ordersvc.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  basehdl.NewBaseHandler(),
		orderService: orderService,
	}
}

// parseObjectIDQuery đọc query ObjectID tùy chọn (rỗng = không lọc)
func parseObjectIDQuery(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Query(name)
	if raw == "" {
		return primitive.NilObjectID, nil
	}
	id, err := utility.ParseObjectID(raw)
	if err != nil {
		return primitive.NilObjectID, common.NewValidationError(name, "Trường "+name+" phải là ObjectID hợp lệ")
	}
	return id, nil
}

// HandlePlaceOrder đặt đơn hàng cho người dùng đang đăng nhập
func (h *OrderHandler) HandlePlaceOrder(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		principal, err := h.CurrentPrincipal(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input orderdto.PlaceOrderInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.orderService.PlaceOrder(c.Context(), &input, principal.ID)
		if err == nil {
			logger.LogCRUD("create", "order", order.ID.Hex(), c, map[string]interface{}{
				"shop_id":      order.Shop.ID.Hex(),
				"total_amount": order.TotalAmount.String(),
				"payment_type": string(order.PaymentType),
			})
		}
		h.HandleResponseStatus(c, common.StatusCreated, order, err)
		return nil
	})
}

// HandleListMine liệt kê đơn hàng của chính người dùng
func (h *OrderHandler) HandleListMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		principal, err := h.CurrentPrincipal(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.orderService.ListMyOrders(c.Context(), principal, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleList liệt kê đơn hàng (?page=&limit=&shopId=&salesmanId=)
func (h *OrderHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		shopID, err := parseObjectIDQuery(c, "shopId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		salesmanID, err := parseObjectIDQuery(c, "salesmanId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.orderService.ListOrders(c.Context(), models.OrderFilter{Shop: shopID, Salesman: salesmanID}, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGet lấy chi tiết đơn hàng
func (h *OrderHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.orderService.GetOrder(c.Context(), id)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleRecordPayment ghi nhận số tiền đã thu
func (h *OrderHandler) HandleRecordPayment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input orderdto.RecordPaymentInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.orderService.RecordPayment(c.Context(), id, *input.AmountPaid)
		if err == nil {
			logger.LogCRUD("record_payment", "order", id.Hex(), c, map[string]interface{}{
				"amount_paid": input.AmountPaid.String(),
			})
		}
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleShopOrdersSummary tổng hợp đơn hàng theo cửa hàng
func (h *OrderHandler) HandleShopOrdersSummary(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		summary, err := h.orderService.ShopOrdersSummary(c.Context())
		h.HandleResponse(c, summary, err)
		return nil
	})
}

// HandlePaymentTypes trả về danh sách hình thức thanh toán
func (h *OrderHandler) HandlePaymentTypes(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, h.orderService.PaymentTypes(), nil)
		return nil
	})
}
