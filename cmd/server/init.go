package main

import (
	"context"
	"time"

	"github.com/tanavishali52/BE-saleman/config"
	authmodels "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	catalogmodels "github.com/tanavishali52/BE-saleman/internal/api/catalog/models"
	ordermodels "github.com/tanavishali52/BE-saleman/internal/api/order/models"
	shopmodels "github.com/tanavishali52/BE-saleman/internal/api/shop/models"
	"github.com/tanavishali52/BE-saleman/internal/database"
	"github.com/tanavishali52/BE-saleman/internal/global"
	"github.com/tanavishali52/BE-saleman/internal/logger"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Shops = "shops"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Items = "items"
	global.MongoDB_ColNames.Orders = "orders"

	logger.GetAppLogger().Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, strong_password, object_id, payment_type)
func initValidator() {
	global.InitValidator()
	logger.GetAppLogger().Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.GetAppLogger().Fatalf("Failed to initialize config: %v", err)
	}
	global.MongoDB_ServerConfig = cfg
	logger.GetAppLogger().Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	log := logger.GetAppLogger()

	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	log.Info("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)

	// Khởi tạo các collections nếu chưa có
	if err := database.EnsureCollections(ctx, db, global.MongoDB_ColNames.All()); err != nil {
		log.Fatalf("Failed to ensure collections: %v", err)
	}

	// Khởi tạo các index cho các collection
	indexes := []struct {
		collection string
		model      interface{}
	}{
		{global.MongoDB_ColNames.Users, authmodels.User{}},
		{global.MongoDB_ColNames.Shops, shopmodels.Shop{}},
		{global.MongoDB_ColNames.Categories, catalogmodels.Category{}},
		{global.MongoDB_ColNames.Items, catalogmodels.Item{}},
		{global.MongoDB_ColNames.Orders, ordermodels.Order{}},
	}
	for _, idx := range indexes {
		if err := database.CreateIndexes(ctx, db.Collection(idx.collection), idx.model); err != nil {
			log.WithError(err).Errorf("Failed to create indexes for %s", idx.collection)
		}
	}
}
