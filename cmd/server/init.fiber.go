package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	authrouter "github.com/tanavishali52/BE-saleman/internal/api/auth/router"
	basehdl "github.com/tanavishali52/BE-saleman/internal/api/base/handler"
	catalogrouter "github.com/tanavishali52/BE-saleman/internal/api/catalog/router"
	orderrouter "github.com/tanavishali52/BE-saleman/internal/api/order/router"
	apirouter "github.com/tanavishali52/BE-saleman/internal/api/router"
	shoprouter "github.com/tanavishali52/BE-saleman/internal/api/shop/router"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/global"
	"github.com/tanavishali52/BE-saleman/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
)

// errorHandler trả lỗi theo envelope chung cho các lỗi không đi qua handler (404 route, body quá lớn...)
func errorHandler(c fiber.Ctx, err error) error {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		status, body := basehdl.ErrorBody(err)
		return basehdl.JSONResponse(c, status, body)
	}

	code := fiber.StatusInternalServerError
	message := common.MsgInternalError
	errorCode := common.ErrCodeInternalServer.Code

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
		switch code {
		case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
			errorCode = common.ErrCodeValidationInput.Code
		case fiber.StatusUnauthorized:
			errorCode = common.ErrCodeAuthToken.Code
		case fiber.StatusForbidden:
			errorCode = common.ErrCodeAuthRole.Code
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			errorCode = common.ErrCodeDatabaseQuery.Code
		}
	}

	if code >= fiber.StatusInternalServerError {
		logger.WithRequest(c).WithError(err).Error("Request error")
	}

	return basehdl.JSONResponse(c, code, fiber.Map{
		"code":    errorCode,
		"message": message,
		"status":  "error",
	})
}

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp(services *Services) *fiber.App {
	cfg := global.MongoDB_ServerConfig
	log := logger.GetAppLogger()

	app := fiber.New(fiber.Config{
		AppName:       "Salesman Order API",
		ServerHeader:  "Salesman Order API",
		StrictRouting: true,
		CaseSensitive: true,

		BodyLimit: 1 * 1024 * 1024, // 1MB

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: errorHandler,
	})

	// 1. Request ID Middleware
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	// 2. CORS Middleware - đặt sớm để xử lý preflight
	var allowOrigins []string
	if cfg.CORS_Origins == "*" {
		allowOrigins = []string{"*"}
	} else {
		for _, origin := range strings.Split(cfg.CORS_Origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowOrigins = append(allowOrigins, origin)
			}
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// 3. Security Headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate Limiting theo IP
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return basehdl.JSONResponse(c, fiber.StatusTooManyRequests, fiber.Map{
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": "Quá nhiều yêu cầu, vui lòng thử lại sau",
					"status":  "error",
				})
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == "/api/v1/system/health" || c.Method() == fiber.MethodOptions
			},
		}))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	// 5. Recover Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithField("panic", fmt.Sprintf("%v", e)).Error("Panic recovered")
		},
	}))

	system := basehdl.NewSystemHandler(global.MongoDB_Session)
	err := apirouter.SetupRoutes(app, services.Auth,
		func(v1 fiber.Router, _ *apirouter.Router) error {
			v1.Get("/system/health", system.HandleHealth)
			return nil
		},
		authrouter.Register(services.AuthHandler, services.SalesmanHandler),
		shoprouter.Register(services.ShopHandler),
		catalogrouter.Register(services.CatalogHandler),
		orderrouter.Register(services.OrderHandler),
	)
	if err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}

	return app
}
