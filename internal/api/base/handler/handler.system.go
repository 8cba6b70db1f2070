package basehdl

import (
	"context"
	"time"

	"github.com/tanavishali52/BE-saleman/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Pinger là phần tối thiểu cần để kiểm tra kết nối database
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct {
	*BaseHandler
	db Pinger
}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler(client *mongo.Client) *SystemHandler {
	h := &SystemHandler{BaseHandler: NewBaseHandler()}
	if client != nil {
		h.db = client
	}
	return h
}

// HandleHealth kiểm tra tình trạng hệ thống (API + MongoDB)
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	services := fiber.Map{"api": "ok"}
	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services":  services,
	}

	if h.db == nil {
		healthData["status"] = "degraded"
		services["database"] = "not_initialized"
		return JSONResponse(c, common.StatusOK, fiber.Map{
			"code":    common.StatusOK,
			"message": common.MsgSuccess,
			"data":    healthData,
			"status":  "success",
		})
	}

	if err := h.db.Ping(ctx, nil); err != nil {
		healthData["status"] = "degraded"
		services["database"] = "error"
		return JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
			"code":    common.StatusServiceUnavailable,
			"message": "Hệ thống đang gặp sự cố",
			"data":    healthData,
			"status":  "error",
		})
	}

	services["database"] = "ok"
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    healthData,
		"status":  "success",
	})
}
