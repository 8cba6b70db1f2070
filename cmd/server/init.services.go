package main

import (
	"time"

	authhdl "github.com/tanavishali52/BE-saleman/internal/api/auth/handler"
	authsvc "github.com/tanavishali52/BE-saleman/internal/api/auth/service"
	cataloghdl "github.com/tanavishali52/BE-saleman/internal/api/catalog/handler"
	catalogsvc "github.com/tanavishali52/BE-saleman/internal/api/catalog/service"
	orderhdl "github.com/tanavishali52/BE-saleman/internal/api/order/handler"
	ordersvc "github.com/tanavishali52/BE-saleman/internal/api/order/service"
	shophdl "github.com/tanavishali52/BE-saleman/internal/api/shop/handler"
	shopsvc "github.com/tanavishali52/BE-saleman/internal/api/shop/service"
	"github.com/tanavishali52/BE-saleman/internal/delivery/channels"
	"github.com/tanavishali52/BE-saleman/internal/global"
	"github.com/tanavishali52/BE-saleman/internal/logger"
)

// Services gom các store, service và handler đã khởi tạo
type Services struct {
	Users *authsvc.UserStore

	Auth *authsvc.AuthService

	AuthHandler     *authhdl.AuthHandler
	SalesmanHandler *authhdl.SalesmanHandler
	ShopHandler     *shophdl.ShopHandler
	CatalogHandler  *cataloghdl.CatalogHandler
	OrderHandler    *orderhdl.OrderHandler
}

// InitServices khởi tạo store từ registry rồi dựng service và handler
func InitServices() *Services {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	users, err := authsvc.NewUserStore()
	if err != nil {
		log.Fatalf("Failed to create user store: %v", err)
	}
	shops, err := shopsvc.NewShopStore()
	if err != nil {
		log.Fatalf("Failed to create shop store: %v", err)
	}
	categories, err := catalogsvc.NewCategoryStore()
	if err != nil {
		log.Fatalf("Failed to create category store: %v", err)
	}
	items, err := catalogsvc.NewItemStore()
	if err != nil {
		log.Fatalf("Failed to create item store: %v", err)
	}
	orders, err := ordersvc.NewOrderStore()
	if err != nil {
		log.Fatalf("Failed to create order store: %v", err)
	}

	tokens := authsvc.NewTokenService(
		cfg.AccessTokenSecret,
		cfg.RefreshTokenSecret,
		time.Duration(cfg.AccessTokenTTL)*time.Second,
		time.Duration(cfg.RefreshTokenTTL)*time.Second,
	)

	var mailer authsvc.Mailer
	if cfg.SMTP.Configured() {
		mailer = channels.NewEmailMailer(cfg.SMTP)
		log.WithField("host", cfg.SMTP.Host).Info("📧 [MAIL] SMTP mailer configured")
	} else {
		log.Warn("📧 [MAIL] SMTP chưa được cấu hình, chức năng quên mật khẩu sẽ trả về lỗi")
	}

	authService := authsvc.NewAuthService(users, tokens, mailer)
	salesmanService := authsvc.NewSalesmanService(users)
	shopService := shopsvc.NewShopService(shops)
	categoryService := catalogsvc.NewCategoryService(categories)
	itemService := catalogsvc.NewItemService(items, categories)
	orderService := ordersvc.NewOrderService(orders, items, shops, users)

	log.Info("Initialized services")

	return &Services{
		Users:           users,
		Auth:            authService,
		AuthHandler:     authhdl.NewAuthHandler(authService),
		SalesmanHandler: authhdl.NewSalesmanHandler(salesmanService),
		ShopHandler:     shophdl.NewShopHandler(shopService),
		CatalogHandler:  cataloghdl.NewCatalogHandler(categoryService, itemService),
		OrderHandler:    orderhdl.NewOrderHandler(orderService),
	}
}
