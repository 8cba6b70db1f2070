package storetest

import (
	"context"
	"sort"
	"sync"

	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	ordermodels "github.com/tanavishali52/BE-saleman/internal/api/order/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Orders là OrderRepository in-memory. CreateErr dùng để giả lập lỗi khi lưu đơn.
type Orders struct {
	mu    sync.Mutex
	clk   clock
	items map[primitive.ObjectID]ordermodels.Order

	CreateErr error
}

// NewOrders tạo kho đơn hàng rỗng
func NewOrders() *Orders {
	return &Orders{items: map[primitive.ObjectID]ordermodels.Order{}}
}

func (s *Orders) Create(_ context.Context, order ordermodels.Order) (ordermodels.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return ordermodels.Order{}, s.CreateErr
	}
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	now := s.clk.next()
	order.CreatedAt, order.UpdatedAt = now, now
	s.items[order.ID] = order
	return order, nil
}

func (s *Orders) FindByID(_ context.Context, id primitive.ObjectID) (ordermodels.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.items[id]
	if !ok {
		return ordermodels.Order{}, common.ErrOrderNotFound
	}
	return order, nil
}

func (s *Orders) List(_ context.Context, filter ordermodels.OrderFilter, page, limit int64) (*basemodels.PaginateResult[ordermodels.Order], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := []ordermodels.Order{}
	for _, order := range s.items {
		if filter.Matches(order) {
			all = append(all, order)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt > all[j].CreatedAt })
	return paginate(all, page, limit), nil
}

func (s *Orders) SetAmountPaid(_ context.Context, id primitive.ObjectID, amount utility.Money) (ordermodels.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.items[id]
	if !ok {
		return ordermodels.Order{}, common.ErrOrderNotFound
	}
	order.AmountPaid = amount
	order.UpdatedAt = s.clk.next()
	s.items[id] = order
	return order, nil
}

func (s *Orders) TotalsByShopAndPaymentType(_ context.Context) ([]ordermodels.PaymentGroupTotals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type key struct {
		shop        primitive.ObjectID
		paymentType ordermodels.PaymentType
	}
	groups := map[key]*ordermodels.PaymentGroupTotals{}
	order := []key{}
	for _, o := range s.items {
		k := key{o.Shop, o.PaymentType}
		g, ok := groups[k]
		if !ok {
			g = &ordermodels.PaymentGroupTotals{Shop: o.Shop, PaymentType: o.PaymentType}
			groups[k] = g
			order = append(order, k)
		}
		g.Count++
		g.PaymentAmount += o.PaymentAmount
		g.TotalAmount += o.TotalAmount
	}

	out := make([]ordermodels.PaymentGroupTotals, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	return out, nil
}

// Count trả về số đơn hàng đang lưu
func (s *Orders) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
