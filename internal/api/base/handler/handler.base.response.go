package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// ErrorBody tạo body chuẩn cho lỗi
func ErrorBody(err error) (int, fiber.Map) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return common.StatusOf(err), fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": publicDetails(customErr.Details),
			"status":  "error",
		}
	}
	return common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
		"status":  "error",
	}
}

// publicDetails ẩn lỗi gốc (error) khỏi response
func publicDetails(details any) any {
	if _, isErr := details.(error); isErr {
		return nil
	}
	return details
}

// SafeHandler bọc handler với recover để luôn trả về response cho client khi có panic
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithField("stack", string(debug.Stack())).Errorf("Panic trong handler: %v", r)
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
			err = nil
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client (200 khi thành công)
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	h.HandleResponseStatus(c, common.StatusOK, data, err)
}

// HandleResponseStatus giống HandleResponse nhưng cho phép chỉ định status khi thành công (201, 204...)
func (h *BaseHandler) HandleResponseStatus(c fiber.Ctx, status int, data interface{}, err error) {
	if err != nil {
		statusCode, body := ErrorBody(err)
		if statusCode >= common.StatusInternalServerError {
			logger.WithRequest(c).WithError(err).Error("Lỗi khi xử lý request")
		}
		_ = JSONResponse(c, statusCode, body)
		return
	}

	if status == common.StatusNoContent {
		_ = c.SendStatus(common.StatusNoContent)
		return
	}

	message := common.MsgSuccess
	if status == common.StatusCreated {
		message = common.MsgCreated
	}
	_ = JSONResponse(c, status, fiber.Map{
		"code":    status,
		"message": message,
		"data":    data,
		"status":  "success",
	})
}
