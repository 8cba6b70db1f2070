// Package cataloghdl chứa handler HTTP cho danh mục và sản phẩm.
package cataloghdl

import (
	basehdl "github.com/tanavishali52/BE-saleman/internal/api/base/handler"
	catalogdto "github.com/tanavishali52/BE-saleman/internal/api/catalog/dto"
	models "github.com/tanavishali52/BE-saleman/internal/api/catalog/models"
	catalogsvc "github.com/tanavishali52/BE-saleman/internal/api/catalog/service"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// CatalogHandler xử lý các route danh mục và sản phẩm
type CatalogHandler struct {
	*basehdl.BaseHandler
	categoryService *catalogsvc.CategoryService
	itemService     *catalogsvc.ItemService
}

// NewCatalogHandler tạo CatalogHandler
func NewCatalogHandler(categoryService *catalogsvc.CategoryService, itemService *catalogsvc.ItemService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:     basehdl.NewBaseHandler(),
		categoryService: categoryService,
		itemService:     itemService,
	}
}

// HandleCreateCategory tạo danh mục
func (h *CatalogHandler) HandleCreateCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.CreateCategoryInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := h.categoryService.Create(c.Context(), &input)
		if err == nil {
			logger.LogCRUD("create", "category", category.ID.Hex(), c, nil)
		}
		h.HandleResponseStatus(c, common.StatusCreated, category, err)
		return nil
	})
}

// HandleListCategories liệt kê danh mục
func (h *CatalogHandler) HandleListCategories(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		categories, err := h.categoryService.List(c.Context())
		h.HandleResponse(c, categories, err)
		return nil
	})
}

// HandleCreateItem tạo sản phẩm
func (h *CatalogHandler) HandleCreateItem(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.CreateItemInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.itemService.Create(c.Context(), &input)
		if err == nil {
			logger.LogCRUD("create", "item", item.ID.Hex(), c, nil)
		}
		h.HandleResponseStatus(c, common.StatusCreated, item, err)
		return nil
	})
}

// HandleListItems liệt kê sản phẩm (?page=&limit=&categoryType=)
func (h *CatalogHandler) HandleListItems(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := models.ItemFilter{}
		if raw := c.Query("categoryType"); raw != "" {
			categoryID, err := utility.ParseObjectID(raw)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			filter.CategoryType = categoryID
		}

		page, limit := h.ParsePagination(c)
		result, err := h.itemService.List(c.Context(), filter, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetItem lấy một sản phẩm
func (h *CatalogHandler) HandleGetItem(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.itemService.Get(c.Context(), id)
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleUpdateItem cập nhật sản phẩm
func (h *CatalogHandler) HandleUpdateItem(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input catalogdto.UpdateItemInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.itemService.Update(c.Context(), id, &input)
		if err == nil {
			logger.LogCRUD("update", "item", id.Hex(), c, nil)
		}
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleDeleteItem xóa sản phẩm
func (h *CatalogHandler) HandleDeleteItem(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.itemService.Delete(c.Context(), id)
		if err == nil {
			logger.LogCRUD("delete", "item", id.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
