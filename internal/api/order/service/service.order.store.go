// Package ordersvc - lưu trữ đơn hàng, đặt hàng (trừ kho nguyên tử + hoàn kho), thu tiền, tổng hợp.
package ordersvc

import (
	"context"
	"errors"
	"fmt"

	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	basesvc "github.com/tanavishali52/BE-saleman/internal/api/base/service"
	models "github.com/tanavishali52/BE-saleman/internal/api/order/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/global"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository là kho lưu đơn hàng. Không tìm thấy trả về common.ErrOrderNotFound.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Order, error)
	List(ctx context.Context, filter models.OrderFilter, page, limit int64) (*basemodels.PaginateResult[models.Order], error)
	SetAmountPaid(ctx context.Context, id primitive.ObjectID, amount utility.Money) (models.Order, error)
	// TotalsByShopAndPaymentType gom nhóm đơn hàng theo (shop, paymentType)
	TotalsByShopAndPaymentType(ctx context.Context) ([]models.PaymentGroupTotals, error)
}

// OrderStore triển khai OrderRepository trên MongoDB
type OrderStore struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
}

// NewOrderStore tạo OrderStore từ collection orders trong registry
func NewOrderStore() (*OrderStore, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %w", common.ErrNotFound)
	}
	return NewOrderStoreWithCollection(collection), nil
}

// NewOrderStoreWithCollection tạo OrderStore từ collection cho trước
func NewOrderStoreWithCollection(collection *mongo.Collection) *OrderStore {
	return &OrderStore{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](collection)}
}

func orderNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrOrderNotFound
	}
	return err
}

func orderFilterToBson(f models.OrderFilter) bson.M {
	filter := bson.M{}
	if !f.Shop.IsZero() {
		filter["shop"] = f.Shop
	}
	if !f.Salesman.IsZero() {
		filter["salesman"] = f.Salesman
	}
	return filter
}

// Create lưu đơn hàng
func (s *OrderStore) Create(ctx context.Context, order models.Order) (models.Order, error) {
	return s.InsertOne(ctx, order)
}

// FindByID tìm đơn hàng theo ID
func (s *OrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	order, err := s.FindOneById(ctx, id)
	return order, orderNotFound(err)
}

// List liệt kê đơn hàng có phân trang, mới nhất trước
func (s *OrderStore) List(ctx context.Context, filter models.OrderFilter, page, limit int64) (*basemodels.PaginateResult[models.Order], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	return s.FindWithPagination(ctx, orderFilterToBson(filter), page, limit, opts)
}

// SetAmountPaid ghi đè số tiền đã thu
func (s *OrderStore) SetAmountPaid(ctx context.Context, id primitive.ObjectID, amount utility.Money) (models.Order, error) {
	update := &basesvc.UpdateData{Set: map[string]interface{}{"amountPaid": amount}}
	order, err := s.UpdateById(ctx, id, update)
	return order, orderNotFound(err)
}

// TotalsByShopAndPaymentType chạy aggregation gom nhóm theo (shop, paymentType)
func (s *OrderStore) TotalsByShopAndPaymentType(ctx context.Context) ([]models.PaymentGroupTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"shop": "$shop", "paymentType": "$paymentType"},
			"count":         bson.M{"$sum": 1},
			"paymentAmount": bson.M{"$sum": "$paymentAmount"},
			"totalAmount":   bson.M{"$sum": "$totalAmount"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"shop":          "$_id.shop",
			"paymentType":   "$_id.paymentType",
			"count":         1,
			"paymentAmount": 1,
			"totalAmount":   1,
		}}},
	}

	results := []models.PaymentGroupTotals{}
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}
