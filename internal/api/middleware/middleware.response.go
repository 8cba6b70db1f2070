package middleware

import (
	basehdl "github.com/tanavishali52/BE-saleman/internal/api/base/handler"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// HandleErrorResponse trả về error response cho client theo envelope chung và dừng chuỗi handler
func HandleErrorResponse(c fiber.Ctx, err error) error {
	status, body := basehdl.ErrorBody(err)
	if status >= common.StatusInternalServerError {
		logger.WithRequest(c).WithError(err).Error("❌ [AUTH] Lỗi hệ thống trong middleware")
	}
	return basehdl.JSONResponse(c, status, body)
}
