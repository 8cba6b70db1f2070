package ordersvc

import (
	"context"
	"errors"
	"fmt"

	authmodels "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	catalogmodels "github.com/tanavishali52/BE-saleman/internal/api/catalog/models"
	orderdto "github.com/tanavishali52/BE-saleman/internal/api/order/dto"
	models "github.com/tanavishali52/BE-saleman/internal/api/order/models"
	shopmodels "github.com/tanavishali52/BE-saleman/internal/api/shop/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockStore là phần kho sản phẩm mà đơn hàng cần
type StockStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (catalogmodels.Item, error)
	DecrementStock(ctx context.Context, id primitive.ObjectID, qty int64) (catalogmodels.Item, error)
	IncrementStock(ctx context.Context, id primitive.ObjectID, qty int64) error
}

// ShopLookup là phần kho cửa hàng mà đơn hàng cần
type ShopLookup interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (shopmodels.Shop, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]shopmodels.Shop, error)
	FindAll(ctx context.Context) ([]shopmodels.Shop, error)
}

// UserLookup là phần kho người dùng mà đơn hàng cần
type UserLookup interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (authmodels.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]authmodels.User, error)
}

// OrderService nghiệp vụ đơn hàng
type OrderService struct {
	orders OrderRepository
	items  StockStore
	shops  ShopLookup
	users  UserLookup
}

// NewOrderService tạo OrderService
func NewOrderService(orders OrderRepository, items StockStore, shops ShopLookup, users UserLookup) *OrderService {
	return &OrderService{orders: orders, items: items, shops: shops, users: users}
}

func (s *OrderService) log(ctx context.Context) *logrus.Entry {
	return logger.WithModuleContext(ctx, "order")
}

// reservation là một dòng đã trừ kho, dùng để hoàn kho khi đặt đơn thất bại
type reservation struct {
	product primitive.ObjectID
	qty     int64
}

// orderRequest là đầu vào đã được kiểm tra
type orderRequest struct {
	shopID      primitive.ObjectID
	lines       []reservation
	paymentType models.PaymentType
	payment     utility.Money
}

// validatePlaceOrder kiểm tra toàn bộ đầu vào trước khi thay đổi dữ liệu
func validatePlaceOrder(input *orderdto.PlaceOrderInput) (orderRequest, error) {
	req := orderRequest{}

	if input.ShopID == "" {
		return req, common.NewValidationError("shopId", "Trường shopId là bắt buộc")
	}
	shopID, err := utility.ParseObjectID(input.ShopID)
	if err != nil {
		return req, common.NewValidationError("shopId", "Trường shopId phải là ObjectID hợp lệ")
	}
	req.shopID = shopID

	if len(input.Items) == 0 {
		return req, common.NewValidationError("items", "Đơn hàng phải có ít nhất một sản phẩm")
	}

	paymentType, err := models.ParsePaymentType(input.PaymentType)
	if err != nil {
		return req, common.NewValidationError("paymentType", "Trường paymentType phải là một trong các giá trị: half, full, cashOnDelivery")
	}
	req.paymentType = paymentType

	if input.PaymentAmount.IsNegative() {
		return req, common.NewValidationError("paymentAmount", "Trường paymentAmount phải lớn hơn hoặc bằng 0")
	}
	req.payment = input.PaymentAmount

	req.lines = make([]reservation, 0, len(input.Items))
	for i, item := range input.Items {
		field := fmt.Sprintf("items[%d]", i)
		if item.ProductID == "" {
			return req, common.NewValidationError(field+".productId", fmt.Sprintf("Trường %s.productId là bắt buộc", field))
		}
		productID, err := utility.ParseObjectID(item.ProductID)
		if err != nil {
			return req, common.NewValidationError(field+".productId", fmt.Sprintf("Trường %s.productId phải là ObjectID hợp lệ", field))
		}
		if item.Quantity < 1 {
			return req, common.NewValidationError(field+".quantity", fmt.Sprintf("Trường %s.quantity phải lớn hơn hoặc bằng 1", field))
		}
		req.lines = append(req.lines, reservation{product: productID, qty: item.Quantity})
	}
	return req, nil
}

// reserve trừ kho cho một dòng. Không đủ hàng hoặc không có sản phẩm thì trả về lỗi tương ứng.
func (s *OrderService) reserve(ctx context.Context, line reservation) (models.OrderLine, error) {
	before, err := s.items.DecrementStock(ctx, line.product, line.qty)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return models.OrderLine{}, err
		}

		// Không khớp điều kiện: phân biệt sản phẩm không tồn tại và thiếu hàng
		item, probeErr := s.items.FindByID(ctx, line.product)
		if probeErr != nil {
			return models.OrderLine{}, probeErr
		}
		return models.OrderLine{}, common.WithDetails(common.ErrInsufficientStock, map[string]interface{}{
			"productId":   item.ID.Hex(),
			"productName": item.Name,
			"available":   item.Quantity,
			"requested":   line.qty,
		})
	}

	return models.OrderLine{
		Product:     before.ID,
		ProductName: before.Name,
		Quantity:    line.qty,
		UnitPrice:   before.Price,
	}, nil
}

// release hoàn kho các dòng đã trừ theo thứ tự ngược lại
func (s *OrderService) release(ctx context.Context, reserved []reservation) {
	// Hoàn kho vẫn chạy kể cả khi request đã bị hủy
	ctx = context.WithoutCancel(ctx)
	for i := len(reserved) - 1; i >= 0; i-- {
		r := reserved[i]
		if err := s.items.IncrementStock(ctx, r.product, r.qty); err != nil {
			s.log(ctx).WithError(err).WithFields(logrus.Fields{
				"product_id": r.product.Hex(),
				"quantity":   r.qty,
			}).Error("❌ [ORDER] Hoàn kho thất bại")
		}
	}
}

// PlaceOrder đặt đơn hàng cho cửa hàng. Mỗi dòng được trừ kho nguyên tử theo thứ tự;
// nếu một dòng (hoặc việc lưu đơn) thất bại, các dòng đã trừ được hoàn lại.
func (s *OrderService) PlaceOrder(ctx context.Context, input *orderdto.PlaceOrderInput, salesmanID primitive.ObjectID) (models.OrderView, error) {
	req, err := validatePlaceOrder(input)
	if err != nil {
		return models.OrderView{}, err
	}

	shop, err := s.shops.FindByID(ctx, req.shopID)
	if err != nil {
		return models.OrderView{}, err
	}
	if !shop.IsActive {
		return models.OrderView{}, common.ErrShopInactive
	}

	lines := make([]models.OrderLine, 0, len(req.lines))
	reserved := make([]reservation, 0, len(req.lines))
	var total utility.Money

	for i, line := range req.lines {
		orderLine, err := s.reserve(ctx, line)
		if err != nil {
			s.release(ctx, reserved)
			return models.OrderView{}, err
		}
		reserved = append(reserved, line)

		orderLine.LineTotal, err = orderLine.UnitPrice.Mul(line.qty)
		if err == nil {
			total, err = total.Add(orderLine.LineTotal)
		}
		if err != nil {
			s.release(ctx, reserved)
			field := fmt.Sprintf("items[%d].quantity", i)
			return models.OrderView{}, common.NewValidationError(field, "Tổng tiền đơn hàng vượt quá giới hạn cho phép")
		}
		lines = append(lines, orderLine)
	}

	order, err := s.orders.Create(ctx, models.Order{
		Shop:          shop.ID,
		Salesman:      salesmanID,
		OrderLines:    lines,
		TotalAmount:   total,
		PaymentType:   req.paymentType,
		PaymentTypeID: req.paymentType.ID(),
		PaymentAmount: req.payment,
		AmountPaid:    0,
	})
	if err != nil {
		s.release(ctx, reserved)
		return models.OrderView{}, err
	}

	s.log(ctx).WithFields(logrus.Fields{
		"order_id":     order.ID.Hex(),
		"shop_id":      shop.ID.Hex(),
		"total_amount": order.TotalAmount.String(),
	}).Info("🛒 [ORDER] Đặt hàng thành công")

	return models.NewOrderView(order, shop.Summary(), s.salesmanSummary(ctx, salesmanID)), nil
}

// salesmanSummary lấy thông tin rút gọn của salesman (rỗng nếu không tìm thấy)
func (s *OrderService) salesmanSummary(ctx context.Context, id primitive.ObjectID) authmodels.Summary {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return authmodels.Summary{ID: id}
	}
	return user.Summary()
}

// RecordPayment ghi đè số tiền đã thu của đơn hàng (gọi lại với cùng giá trị cho cùng kết quả)
func (s *OrderService) RecordPayment(ctx context.Context, orderID primitive.ObjectID, amountPaid utility.Money) (models.OrderView, error) {
	if amountPaid.IsNegative() {
		return models.OrderView{}, common.NewValidationError("amountPaid", "Trường amountPaid phải lớn hơn hoặc bằng 0")
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return models.OrderView{}, err
	}
	if amountPaid > order.TotalAmount {
		return models.OrderView{}, common.WithDetails(
			common.NewValidationError("amountPaid", "Số tiền đã thu không được vượt quá tổng tiền đơn hàng"),
			map[string]interface{}{
				"field":       "amountPaid",
				"amountPaid":  amountPaid,
				"totalAmount": order.TotalAmount,
			},
		)
	}

	updated, err := s.orders.SetAmountPaid(ctx, orderID, amountPaid)
	if err != nil {
		return models.OrderView{}, err
	}

	s.log(ctx).WithFields(logrus.Fields{
		"order_id":    orderID.Hex(),
		"amount_paid": amountPaid.String(),
	}).Info("💰 [ORDER] Cập nhật số tiền đã thu")

	views, err := s.join(ctx, []models.Order{updated})
	if err != nil {
		return models.OrderView{}, err
	}
	return views[0], nil
}

// join ghép thông tin cửa hàng và salesman vào danh sách đơn hàng
func (s *OrderService) join(ctx context.Context, orders []models.Order) ([]models.OrderView, error) {
	shopIDs := []primitive.ObjectID{}
	userIDs := []primitive.ObjectID{}
	seen := map[primitive.ObjectID]bool{}
	for _, o := range orders {
		if !seen[o.Shop] {
			seen[o.Shop] = true
			shopIDs = append(shopIDs, o.Shop)
		}
		if !seen[o.Salesman] {
			seen[o.Salesman] = true
			userIDs = append(userIDs, o.Salesman)
		}
	}

	shops, err := s.shops.FindByIDs(ctx, shopIDs)
	if err != nil {
		return nil, err
	}
	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	shopByID := make(map[primitive.ObjectID]shopmodels.Summary, len(shops))
	for _, sh := range shops {
		shopByID[sh.ID] = sh.Summary()
	}
	userByID := make(map[primitive.ObjectID]authmodels.Summary, len(users))
	for _, u := range users {
		userByID[u.ID] = u.Summary()
	}

	views := make([]models.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, models.NewOrderView(o, shopByID[o.Shop], userByID[o.Salesman]))
	}
	return views, nil
}

func (s *OrderService) list(ctx context.Context, filter models.OrderFilter, page, limit int64) (*basemodels.PaginateResult[models.OrderView], error) {
	result, err := s.orders.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}
	views, err := s.join(ctx, result.Items)
	if err != nil {
		return nil, err
	}
	return basemodels.NewPaginateResult(views, result.Page, result.Limit, result.Total), nil
}

// ListOrders liệt kê đơn hàng cho admin, lọc theo cửa hàng / salesman
func (s *OrderService) ListOrders(ctx context.Context, filter models.OrderFilter, page, limit int64) (*basemodels.PaginateResult[models.OrderView], error) {
	return s.list(ctx, filter, page, limit)
}

// ListMyOrders liệt kê đơn hàng do chính người dùng đang đăng nhập tạo
func (s *OrderService) ListMyOrders(ctx context.Context, principal authmodels.Principal, page, limit int64) (*basemodels.PaginateResult[models.OrderView], error) {
	return s.list(ctx, models.OrderFilter{Salesman: principal.ID}, page, limit)
}

// GetOrder lấy chi tiết một đơn hàng
func (s *OrderService) GetOrder(ctx context.Context, id primitive.ObjectID) (models.OrderView, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return models.OrderView{}, err
	}
	views, err := s.join(ctx, []models.Order{order})
	if err != nil {
		return models.OrderView{}, err
	}
	return views[0], nil
}

// ShopOrdersSummary tổng hợp đơn hàng theo từng cửa hàng (kể cả cửa hàng chưa có đơn)
func (s *OrderService) ShopOrdersSummary(ctx context.Context) ([]models.ShopOrdersSummary, error) {
	shops, err := s.shops.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.orders.TotalsByShopAndPaymentType(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ShopOrdersSummary, len(shops))
	index := make(map[primitive.ObjectID]int, len(shops))
	for i, sh := range shops {
		summaries[i] = models.ShopOrdersSummary{Shop: sh.Summary(), IsActive: sh.IsActive}
		index[sh.ID] = i
	}
	for _, g := range groups {
		// Đơn của cửa hàng đã bị xóa không còn trong danh sách
		if i, ok := index[g.Shop]; ok {
			if err := summaries[i].Add(g); err != nil {
				return nil, err
			}
		}
	}
	return summaries, nil
}

// PaymentTypes trả về danh sách hình thức thanh toán
func (s *OrderService) PaymentTypes() []models.PaymentTypeOption {
	return models.PaymentTypes()
}
