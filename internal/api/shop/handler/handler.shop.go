// Package shophdl chứa handler HTTP cho cửa hàng.
package shophdl

import (
	basehdl "github.com/tanavishali52/BE-saleman/internal/api/base/handler"
	shopdto "github.com/tanavishali52/BE-saleman/internal/api/shop/dto"
	models "github.com/tanavishali52/BE-saleman/internal/api/shop/models"
	shopsvc "github.com/tanavishali52/BE-saleman/internal/api/shop/service"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// ShopHandler xử lý các route cửa hàng
type ShopHandler struct {
	*basehdl.BaseHandler
	shopService *shopsvc.ShopService
}

// NewShopHandler tạo ShopHandler
func NewShopHandler(shopService *shopsvc.ShopService) *ShopHandler {
	return &ShopHandler{
		BaseHandler: basehdl.NewBaseHandler(),
		shopService: shopService,
	}
}

// HandleCreate tạo cửa hàng
func (h *ShopHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input shopdto.CreateShopInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		shop, err := h.shopService.Create(c.Context(), &input)
		if err == nil {
			logger.LogCRUD("create", "shop", shop.ID.Hex(), c, nil)
		}
		h.HandleResponseStatus(c, common.StatusCreated, shop, err)
		return nil
	})
}

// HandleList liệt kê cửa hàng (?page=&limit=&city=&isActive=)
func (h *ShopHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		isActive, err := h.ParseOptionalBoolQuery(c, "isActive")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		filter := models.ShopFilter{City: c.Query("city"), IsActive: isActive}
		result, err := h.shopService.List(c.Context(), filter, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGet lấy một cửa hàng
func (h *ShopHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		shop, err := h.shopService.Get(c.Context(), id)
		h.HandleResponse(c, shop, err)
		return nil
	})
}

// HandleUpdate cập nhật cửa hàng
func (h *ShopHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input shopdto.UpdateShopInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		shop, err := h.shopService.Update(c.Context(), id, &input)
		if err == nil {
			logger.LogCRUD("update", "shop", id.Hex(), c, nil)
		}
		h.HandleResponse(c, shop, err)
		return nil
	})
}

// HandleDelete xóa cửa hàng
func (h *ShopHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.shopService.Delete(c.Context(), id)
		if err == nil {
			logger.LogCRUD("delete", "shop", id.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleSetStatus bật/tắt cửa hàng
func (h *ShopHandler) HandleSetStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input shopdto.SetShopStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		shop, err := h.shopService.SetStatus(c.Context(), id, *input.IsActive)
		if err == nil {
			logger.LogCRUD("set_status", "shop", id.Hex(), c, map[string]interface{}{"isActive": *input.IsActive})
		}
		h.HandleResponse(c, shop, err)
		return nil
	})
}
