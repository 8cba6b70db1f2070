// Package catalogsvc - lưu trữ và nghiệp vụ danh mục, sản phẩm, tồn kho.
package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	basesvc "github.com/tanavishali52/BE-saleman/internal/api/base/service"
	models "github.com/tanavishali52/BE-saleman/internal/api/catalog/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CategoryRepository là kho lưu danh mục. Không tìm thấy trả về common.ErrCategoryNotFound.
type CategoryRepository interface {
	Create(ctx context.Context, category models.Category) (models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context) ([]models.Category, error)
}

// ItemRepository là kho lưu sản phẩm. Không tìm thấy trả về common.ErrProductNotFound.
type ItemRepository interface {
	Create(ctx context.Context, item models.Item) (models.Item, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Item, error)
	List(ctx context.Context, filter models.ItemFilter, page, limit int64) (*basemodels.PaginateResult[models.Item], error)
	Update(ctx context.Context, id primitive.ObjectID, update models.ItemUpdate) (models.Item, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DecrementStock trừ qty khỏi tồn kho chỉ khi tồn kho >= qty (một thao tác nguyên tử),
	// trả về bản ghi TRƯỚC khi trừ. Không khớp điều kiện trả về common.ErrNotFound.
	DecrementStock(ctx context.Context, id primitive.ObjectID, qty int64) (models.Item, error)
	// IncrementStock cộng lại qty vào tồn kho (hoàn kho)
	IncrementStock(ctx context.Context, id primitive.ObjectID, qty int64) error
}

// CategoryStore triển khai CategoryRepository trên MongoDB
type CategoryStore struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryStore tạo CategoryStore từ collection categories trong registry
func NewCategoryStore() (*CategoryStore, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %w", common.ErrNotFound)
	}
	return NewCategoryStoreWithCollection(collection), nil
}

// NewCategoryStoreWithCollection tạo CategoryStore từ collection cho trước
func NewCategoryStoreWithCollection(collection *mongo.Collection) *CategoryStore {
	return &CategoryStore{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](collection)}
}

func categoryNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrCategoryNotFound
	}
	return err
}

// Create thêm danh mục
func (s *CategoryStore) Create(ctx context.Context, category models.Category) (models.Category, error) {
	return s.InsertOne(ctx, category)
}

// FindByID tìm danh mục theo ID
func (s *CategoryStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	category, err := s.FindOneById(ctx, id)
	return category, categoryNotFound(err)
}

// FindByIDs tìm nhiều danh mục
func (s *CategoryStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error) {
	return s.FindManyByIds(ctx, ids)
}

// ExistsByName kiểm tra tên danh mục đã tồn tại chưa
func (s *CategoryStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"name": name})
}

// FindAll trả về toàn bộ danh mục theo tên
func (s *CategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

// ItemStore triển khai ItemRepository trên MongoDB
type ItemStore struct {
	*basesvc.BaseServiceMongoImpl[models.Item]
}

// NewItemStore tạo ItemStore từ collection items trong registry
func NewItemStore() (*ItemStore, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Items)
	if !exist {
		return nil, fmt.Errorf("failed to get items collection: %w", common.ErrNotFound)
	}
	return NewItemStoreWithCollection(collection), nil
}

// NewItemStoreWithCollection tạo ItemStore từ collection cho trước
func NewItemStoreWithCollection(collection *mongo.Collection) *ItemStore {
	return &ItemStore{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Item](collection)}
}

func itemNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrProductNotFound
	}
	return err
}

func itemFilterToBson(f models.ItemFilter) bson.M {
	filter := bson.M{}
	if !f.CategoryType.IsZero() {
		filter["categoryType"] = f.CategoryType
	}
	return filter
}

// Create thêm sản phẩm
func (s *ItemStore) Create(ctx context.Context, item models.Item) (models.Item, error) {
	return s.InsertOne(ctx, item)
}

// FindByID tìm sản phẩm theo ID
func (s *ItemStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Item, error) {
	item, err := s.FindOneById(ctx, id)
	return item, itemNotFound(err)
}

// List liệt kê sản phẩm có phân trang, mới nhất trước
func (s *ItemStore) List(ctx context.Context, filter models.ItemFilter, page, limit int64) (*basemodels.PaginateResult[models.Item], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, itemFilterToBson(filter), page, limit, opts)
}

// Update cập nhật một phần sản phẩm
func (s *ItemStore) Update(ctx context.Context, id primitive.ObjectID, update models.ItemUpdate) (models.Item, error) {
	item, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: update.ToSet()})
	return item, itemNotFound(err)
}

// Delete xóa sản phẩm
func (s *ItemStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return itemNotFound(s.DeleteById(ctx, id))
}

// DecrementStock trừ tồn kho có điều kiện, trả về bản ghi trước khi trừ
func (s *ItemStore) DecrementStock(ctx context.Context, id primitive.ObjectID, qty int64) (models.Item, error) {
	filter := bson.M{"_id": id, "quantity": bson.M{"$gte": qty}}
	update := &basesvc.UpdateData{Inc: map[string]interface{}{"quantity": -qty}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
	return s.FindOneAndUpdate(ctx, filter, update, opts)
}

// IncrementStock cộng lại tồn kho
func (s *ItemStore) IncrementStock(ctx context.Context, id primitive.ObjectID, qty int64) error {
	update := &basesvc.UpdateData{Inc: map[string]interface{}{"quantity": qty}}
	_, err := s.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, nil)
	return itemNotFound(err)
}
