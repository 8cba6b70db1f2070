// Package shopsvc - lưu trữ và nghiệp vụ cửa hàng.
package shopsvc

import (
	"context"
	"errors"
	"fmt"

	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	basesvc "github.com/tanavishali52/BE-saleman/internal/api/base/service"
	models "github.com/tanavishali52/BE-saleman/internal/api/shop/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ShopRepository là kho lưu cửa hàng. Không tìm thấy trả về common.ErrShopNotFound.
type ShopRepository interface {
	Create(ctx context.Context, shop models.Shop) (models.Shop, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Shop, error)
	FindAll(ctx context.Context) ([]models.Shop, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Shop, error)
	Exists(ctx context.Context, filter models.ShopFilter) (bool, error)
	List(ctx context.Context, filter models.ShopFilter, page, limit int64) (*basemodels.PaginateResult[models.Shop], error)
	Update(ctx context.Context, id primitive.ObjectID, update models.ShopUpdate) (models.Shop, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ShopStore triển khai ShopRepository trên MongoDB
type ShopStore struct {
	*basesvc.BaseServiceMongoImpl[models.Shop]
}

// NewShopStore tạo ShopStore từ collection shops trong registry
func NewShopStore() (*ShopStore, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Shops)
	if !exist {
		return nil, fmt.Errorf("failed to get shops collection: %w", common.ErrNotFound)
	}
	return NewShopStoreWithCollection(collection), nil
}

// NewShopStoreWithCollection tạo ShopStore từ collection cho trước
func NewShopStoreWithCollection(collection *mongo.Collection) *ShopStore {
	return &ShopStore{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Shop](collection)}
}

func shopFilterToBson(f models.ShopFilter) bson.M {
	filter := bson.M{}
	if f.CNIC != "" {
		filter["cnic"] = f.CNIC
	}
	if f.City != "" {
		filter["city"] = f.City
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}
	if !f.ExcludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": f.ExcludeID}
	}
	return filter
}

func shopNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrShopNotFound
	}
	return err
}

// Create thêm cửa hàng
func (s *ShopStore) Create(ctx context.Context, shop models.Shop) (models.Shop, error) {
	return s.InsertOne(ctx, shop)
}

// FindByID tìm cửa hàng theo ID
func (s *ShopStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Shop, error) {
	shop, err := s.FindOneById(ctx, id)
	return shop, shopNotFound(err)
}

// FindAll trả về toàn bộ cửa hàng theo thứ tự tên
func (s *ShopStore) FindAll(ctx context.Context) ([]models.Shop, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "shopName", Value: 1}}))
}

// FindByIDs tìm nhiều cửa hàng theo danh sách ID
func (s *ShopStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Shop, error) {
	return s.FindManyByIds(ctx, ids)
}

// Exists kiểm tra có cửa hàng thỏa filter không
func (s *ShopStore) Exists(ctx context.Context, filter models.ShopFilter) (bool, error) {
	return s.DocumentExists(ctx, shopFilterToBson(filter))
}

// List liệt kê cửa hàng có phân trang, mới nhất trước
func (s *ShopStore) List(ctx context.Context, filter models.ShopFilter, page, limit int64) (*basemodels.PaginateResult[models.Shop], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, shopFilterToBson(filter), page, limit, opts)
}

// Update cập nhật một phần cửa hàng
func (s *ShopStore) Update(ctx context.Context, id primitive.ObjectID, update models.ShopUpdate) (models.Shop, error) {
	shop, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: update.ToSet()})
	return shop, shopNotFound(err)
}

// Delete xóa cửa hàng
func (s *ShopStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return shopNotFound(s.DeleteById(ctx, id))
}
