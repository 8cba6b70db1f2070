package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tanavishali52/BE-saleman/internal/database"
	"github.com/tanavishali52/BE-saleman/internal/global"
	"github.com/tanavishali52/BE-saleman/internal/logger"
	"github.com/tanavishali52/BE-saleman/internal/utility"
	"github.com/tanavishali52/BE-saleman/internal/worker"

	"github.com/gofiber/fiber/v3"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc biến môi trường LOG_* để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// startWorkers chạy các background worker cho tới khi ctx bị hủy
func startWorkers(ctx context.Context, services *Services) {
	log := logger.GetAppLogger()

	interval := global.MongoDB_ServerConfig.ResetCodeSweepInterval
	if interval <= 0 {
		log.Info("🧹 [RESET_SWEEP] Disabled")
		return
	}

	sweeper := worker.NewResetCodeSweeper(services.Users, time.Duration(interval)*time.Second)
	go utility.GoProtect(func() { sweeper.Start(ctx) })
}

// Hàm main
func main() {
	initLogger()
	defer logger.Close()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	services := InitServices()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData(services)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, services)

	app := InitFiberApp(services)
	log := logger.GetAppLogger()
	address := ":" + global.MongoDB_ServerConfig.Port

	go func() {
		log.WithField("address", address).Info("Starting server with HTTP")
		if err := app.Listen(address, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	cancel()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.WithError(err).Error("Failed to shutdown server gracefully")
	}
	_ = database.CloseInstance(global.MongoDB_Session)
	log.Info("Server stopped")
}
