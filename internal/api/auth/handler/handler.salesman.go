package authhdl

import (
	authdto "github.com/tanavishali52/BE-saleman/internal/api/auth/dto"
	authsvc "github.com/tanavishali52/BE-saleman/internal/api/auth/service"
	basehdl "github.com/tanavishali52/BE-saleman/internal/api/base/handler"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// SalesmanHandler xử lý các route admin quản lý salesman
type SalesmanHandler struct {
	*basehdl.BaseHandler
	salesmanService *authsvc.SalesmanService
}

// NewSalesmanHandler tạo SalesmanHandler
func NewSalesmanHandler(salesmanService *authsvc.SalesmanService) *SalesmanHandler {
	return &SalesmanHandler{
		BaseHandler:     basehdl.NewBaseHandler(),
		salesmanService: salesmanService,
	}
}

// HandleCreate tạo tài khoản salesman
func (h *SalesmanHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.CreateSalesmanInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.salesmanService.Create(c.Context(), &input)
		if err == nil {
			logger.LogCRUD("create", "salesman", user.ID.Hex(), c, nil)
		}
		h.HandleResponseStatus(c, common.StatusCreated, user, err)
		return nil
	})
}

// HandleList liệt kê salesman có phân trang (?page=&limit=)
func (h *SalesmanHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		result, err := h.salesmanService.List(c.Context(), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGet lấy một salesman
func (h *SalesmanHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.salesmanService.Get(c.Context(), id)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdate cập nhật thông tin salesman
func (h *SalesmanHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UpdateSalesmanInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.salesmanService.Update(c.Context(), id, &input)
		if err == nil {
			logger.LogCRUD("update", "salesman", id.Hex(), c, nil)
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleDelete xóa salesman
func (h *SalesmanHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.salesmanService.Delete(c.Context(), id)
		if err == nil {
			logger.LogCRUD("delete", "salesman", id.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleSetStatus bật/tắt tài khoản salesman
func (h *SalesmanHandler) HandleSetStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.SetStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.salesmanService.SetStatus(c.Context(), id, *input.IsActive)
		if err == nil {
			logger.LogCRUD("set_status", "salesman", id.Hex(), c, map[string]interface{}{"isActive": *input.IsActive})
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}
