package shopsvc

import (
	"context"

	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	shopdto "github.com/tanavishali52/BE-saleman/internal/api/shop/dto"
	models "github.com/tanavishali52/BE-saleman/internal/api/shop/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShopService nghiệp vụ quản lý cửa hàng
type ShopService struct {
	shops ShopRepository
}

// NewShopService tạo ShopService
func NewShopService(shops ShopRepository) *ShopService {
	return &ShopService{shops: shops}
}

func (s *ShopService) checkCNIC(ctx context.Context, cnic string, exclude primitive.ObjectID) error {
	exists, err := s.shops.Exists(ctx, models.ShopFilter{CNIC: cnic, ExcludeID: exclude})
	if err != nil {
		return err
	}
	if exists {
		return common.NewAlreadyExistsError("cnic")
	}
	return nil
}

// Create tạo cửa hàng mới (mặc định đang hoạt động)
func (s *ShopService) Create(ctx context.Context, input *shopdto.CreateShopInput) (models.Shop, error) {
	if err := s.checkCNIC(ctx, input.CNIC, primitive.NilObjectID); err != nil {
		return models.Shop{}, err
	}

	shop, err := s.shops.Create(ctx, models.Shop{
		ShopName:    input.ShopName,
		OwnerName:   input.OwnerName,
		CNIC:        input.CNIC,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		City:        input.City,
		IsActive:    true,
	})
	if err != nil {
		return models.Shop{}, err
	}

	logger.WithModuleContext(ctx, "shop").WithField("shop_id", shop.ID.Hex()).Info("🏪 [SHOP] Tạo cửa hàng")
	return shop, nil
}

// List liệt kê cửa hàng, lọc theo city / isActive
func (s *ShopService) List(ctx context.Context, filter models.ShopFilter, page, limit int64) (*basemodels.PaginateResult[models.Shop], error) {
	return s.shops.List(ctx, filter, page, limit)
}

// Get lấy một cửa hàng
func (s *ShopService) Get(ctx context.Context, id primitive.ObjectID) (models.Shop, error) {
	return s.shops.FindByID(ctx, id)
}

// Update cập nhật cửa hàng, kiểm tra lại cnic trùng
func (s *ShopService) Update(ctx context.Context, id primitive.ObjectID, input *shopdto.UpdateShopInput) (models.Shop, error) {
	if _, err := s.shops.FindByID(ctx, id); err != nil {
		return models.Shop{}, err
	}
	if input.CNIC != nil {
		if err := s.checkCNIC(ctx, *input.CNIC, id); err != nil {
			return models.Shop{}, err
		}
	}

	return s.shops.Update(ctx, id, models.ShopUpdate{
		ShopName:    input.ShopName,
		OwnerName:   input.OwnerName,
		CNIC:        input.CNIC,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		City:        input.City,
	})
}

// Delete xóa cửa hàng
func (s *ShopService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.shops.Delete(ctx, id)
}

// SetStatus bật/tắt cửa hàng. Cửa hàng ngừng hoạt động không nhận đơn mới.
func (s *ShopService) SetStatus(ctx context.Context, id primitive.ObjectID, active bool) (models.Shop, error) {
	return s.shops.Update(ctx, id, models.ShopUpdate{IsActive: &active})
}
