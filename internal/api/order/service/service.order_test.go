package ordersvc

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	authmodels "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	catalogmodels "github.com/tanavishali52/BE-saleman/internal/api/catalog/models"
	orderdto "github.com/tanavishali52/BE-saleman/internal/api/order/dto"
	models "github.com/tanavishali52/BE-saleman/internal/api/order/models"
	shopmodels "github.com/tanavishali52/BE-saleman/internal/api/shop/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/storetest"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ OrderRepository = (*storetest.Orders)(nil)
	_ StockStore      = (*storetest.Items)(nil)
	_ ShopLookup      = (*storetest.Shops)(nil)
	_ UserLookup      = (*storetest.Users)(nil)
)

type fixture struct {
	svc      *OrderService
	orders   *storetest.Orders
	items    *storetest.Items
	shops    *storetest.Shops
	shop     shopmodels.Shop
	salesman authmodels.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		orders: storetest.NewOrders(),
		items:  storetest.NewItems(),
		shops:  storetest.NewShops(),
	}
	users := storetest.NewUsers()

	var err error
	f.shop, err = f.shops.Create(ctx, shopmodels.Shop{ShopName: "S1", OwnerName: "Owner", CNIC: "111", City: "Lahore", Address: "A1", IsActive: true})
	require.NoError(t, err)
	f.salesman, err = users.Create(ctx, authmodels.User{Name: "Sale", Email: "sale@example.com", Role: authmodels.RoleSalesman, IsActive: true})
	require.NoError(t, err)

	f.svc = NewOrderService(f.orders, f.items, f.shops, users)
	return f
}

func (f *fixture) product(t *testing.T, name string, price utility.Money, qty int64) catalogmodels.Item {
	t.Helper()
	item, err := f.items.Create(context.Background(), catalogmodels.Item{Name: name, CategoryType: primitive.NewObjectID(), Price: price, Quantity: qty})
	require.NoError(t, err)
	return item
}

func (f *fixture) input(paymentType string, paid utility.Money, lines ...orderdto.OrderItemInput) *orderdto.PlaceOrderInput {
	return &orderdto.PlaceOrderInput{
		ShopID:        f.shop.ID.Hex(),
		Items:         lines,
		PaymentType:   paymentType,
		PaymentAmount: paid,
	}
}

func line(item catalogmodels.Item, qty int64) orderdto.OrderItemInput {
	return orderdto.OrderItemInput{ProductID: item.ID.Hex(), Quantity: qty}
}

func TestPlaceOrder_ThenRecordPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.product(t, "P1", 10000, 10)

	order, err := f.svc.PlaceOrder(ctx, f.input("half", 15000, line(p1, 3)), f.salesman.ID)
	require.NoError(t, err)

	assert.Equal(t, utility.Money(30000), order.TotalAmount)
	assert.Equal(t, models.PaymentHalf, order.PaymentType)
	assert.Equal(t, 1, order.PaymentTypeID)
	assert.Equal(t, utility.Money(0), order.AmountPaid)
	assert.Equal(t, "S1", order.Shop.ShopName)
	assert.Equal(t, "sale@example.com", order.Salesman.Email)
	require.Len(t, order.OrderLines, 1)
	assert.Equal(t, "P1", order.OrderLines[0].ProductName)
	assert.Equal(t, utility.Money(10000), order.OrderLines[0].UnitPrice)
	assert.Equal(t, int64(7), f.items.Quantity(p1.ID))

	paid, err := f.svc.RecordPayment(ctx, order.ID, 30000)
	require.NoError(t, err)
	assert.Equal(t, utility.Money(30000), paid.AmountPaid)

	// Ghi lại cùng giá trị cho cùng kết quả
	paid, err = f.svc.RecordPayment(ctx, order.ID, 30000)
	require.NoError(t, err)
	assert.Equal(t, utility.Money(30000), paid.AmountPaid)

	_, err = f.svc.RecordPayment(ctx, order.ID, 30001)
	assert.True(t, common.HasCode(err, common.ErrCodeValidationInput))
	assert.Equal(t, common.StatusBadRequest, common.StatusOf(err))

	stored, err := f.svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, utility.Money(30000), stored.AmountPaid)
}

func TestPlaceOrder_LineSnapshotSurvivesPriceChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.product(t, "P1", 250, 5)

	order, err := f.svc.PlaceOrder(ctx, f.input("full", 500, line(p1, 2)), f.salesman.ID)
	require.NoError(t, err)

	newPrice := utility.Money(999)
	_, err = f.items.Update(ctx, p1.ID, catalogmodels.ItemUpdate{Price: &newPrice})
	require.NoError(t, err)

	stored, err := f.svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, utility.Money(250), stored.OrderLines[0].UnitPrice)
	assert.Equal(t, utility.Money(500), stored.TotalAmount)
}

func TestPlaceOrder_InsufficientStockRestoresEarlierLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.product(t, "P1", 100, 10)
	p2 := f.product(t, "P2", 100, 1)

	_, err := f.svc.PlaceOrder(ctx, f.input("full", 0, line(p1, 4), line(p2, 2)), f.salesman.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInsufficientStock))

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	details := appErr.Details.(map[string]interface{})
	assert.Equal(t, p2.ID.Hex(), details["productId"])
	assert.Equal(t, "P2", details["productName"])
	assert.Equal(t, int64(1), details["available"])
	assert.Equal(t, int64(2), details["requested"])

	assert.Equal(t, int64(10), f.items.Quantity(p1.ID))
	assert.Equal(t, int64(1), f.items.Quantity(p2.ID))
	assert.Equal(t, 0, f.orders.Count())
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.product(t, "P1", 100, 10)
	ghost := catalogmodels.Item{ID: primitive.NewObjectID()}

	_, err := f.svc.PlaceOrder(ctx, f.input("full", 0, line(p1, 1), line(ghost, 1)), f.salesman.ID)
	assert.True(t, errors.Is(err, common.ErrProductNotFound))
	assert.Equal(t, int64(10), f.items.Quantity(p1.ID))
}

func TestPlaceOrder_CreateFailureRestoresStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.product(t, "P1", 100, 10)
	f.orders.CreateErr = common.ErrMongoNetwork

	_, err := f.svc.PlaceOrder(ctx, f.input("cashOnDelivery", 0, line(p1, 3)), f.salesman.ID)
	assert.True(t, errors.Is(err, common.ErrMongoNetwork))
	assert.Equal(t, int64(10), f.items.Quantity(p1.ID))
}

func TestPlaceOrder_CompensationFailureStillReturnsOriginalError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.product(t, "P1", 100, 10)
	p2 := f.product(t, "P2", 100, 0)
	f.items.IncrementErr = common.ErrMongoTimeout

	_, err := f.svc.PlaceOrder(ctx, f.input("full", 0, line(p1, 1), line(p2, 1)), f.salesman.ID)
	assert.True(t, errors.Is(err, common.ErrInsufficientStock))
}

func TestPlaceOrder_TotalOverflowRestoresStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pricey := f.product(t, "Pricey", utility.Money(math.MaxInt64/2), 10)
	half := f.product(t, "Half", utility.Money(math.MaxInt64/2+2), 10)

	// Thành tiền một dòng tràn int64
	_, err := f.svc.PlaceOrder(ctx, f.input("full", 0, line(pricey, 3)), f.salesman.ID)
	assert.True(t, common.HasCode(err, common.ErrCodeValidationInput), "lỗi: %v", err)
	assert.Equal(t, int64(10), f.items.Quantity(pricey.ID))

	// Từng dòng hợp lệ nhưng tổng đơn tràn int64
	_, err = f.svc.PlaceOrder(ctx, f.input("full", 0, line(pricey, 1), line(half, 1)), f.salesman.ID)
	assert.True(t, common.HasCode(err, common.ErrCodeValidationInput), "lỗi: %v", err)
	assert.Equal(t, int64(10), f.items.Quantity(pricey.ID))
	assert.Equal(t, int64(10), f.items.Quantity(half.ID))
	assert.Equal(t, 0, f.orders.Count())
}

func TestPlaceOrder_ConcurrentOrdersNeverOversell(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	const (
		stock   = int64(10)
		qty     = int64(3)
		callers = 8
	)
	p1 := f.product(t, "P1", 100, stock)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		short     int
		others    []error
	)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.svc.PlaceOrder(ctx, f.input("full", 0, line(p1, qty)), f.salesman.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, common.ErrInsufficientStock):
				short++
			default:
				others = append(others, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, int(stock/qty), succeeded)
	assert.Equal(t, callers-int(stock/qty), short)
	assert.Equal(t, stock%qty, f.items.Quantity(p1.ID))
	assert.GreaterOrEqual(t, f.items.Quantity(p1.ID), int64(0))
	assert.Equal(t, succeeded, f.orders.Count())
}

func TestPlaceOrder_ShopChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.product(t, "P1", 100, 10)

	missing := f.input("full", 0, line(p1, 1))
	missing.ShopID = primitive.NewObjectID().Hex()
	_, err := f.svc.PlaceOrder(ctx, missing, f.salesman.ID)
	assert.True(t, errors.Is(err, common.ErrShopNotFound))

	inactive := false
	_, err = f.shops.Update(ctx, f.shop.ID, shopmodels.ShopUpdate{IsActive: &inactive})
	require.NoError(t, err)
	_, err = f.svc.PlaceOrder(ctx, f.input("full", 0, line(p1, 1)), f.salesman.ID)
	assert.True(t, errors.Is(err, common.ErrShopInactive))
	assert.Equal(t, int64(10), f.items.Quantity(p1.ID))
}

func TestPlaceOrder_ValidationHappensBeforeAnyDecrement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.product(t, "P1", 100, 10)

	cases := map[string]*orderdto.PlaceOrderInput{
		"no items":        f.input("full", 0),
		"bad payment":     f.input("monthly", 0, line(p1, 1)),
		"negative amount": f.input("full", -1, line(p1, 1)),
		"zero quantity":   f.input("full", 0, line(p1, 1), line(p1, 0)),
		"bad product id":  f.input("full", 0, line(p1, 1), orderdto.OrderItemInput{ProductID: "abc", Quantity: 1}),
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.PlaceOrder(ctx, input, f.salesman.ID)
			assert.True(t, common.HasCode(err, common.ErrCodeValidationInput), "lỗi: %v", err)
			assert.Equal(t, int64(10), f.items.Quantity(p1.ID))
		})
	}
}

func TestRecordPayment_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RecordPayment(ctx, primitive.NewObjectID(), 0)
	assert.True(t, errors.Is(err, common.ErrOrderNotFound))

	_, err = f.svc.RecordPayment(ctx, primitive.NewObjectID(), -5)
	assert.True(t, common.HasCode(err, common.ErrCodeValidationInput))
}

func TestShopOrdersSummary_ZeroFilled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.product(t, "P1", 100, 100)

	empty, err := f.shops.Create(ctx, shopmodels.Shop{ShopName: "S2", CNIC: "222", IsActive: true})
	require.NoError(t, err)

	_, err = f.svc.PlaceOrder(ctx, f.input("half", 50, line(p1, 1)), f.salesman.ID)
	require.NoError(t, err)
	_, err = f.svc.PlaceOrder(ctx, f.input("half", 100, line(p1, 2)), f.salesman.ID)
	require.NoError(t, err)
	_, err = f.svc.PlaceOrder(ctx, f.input("cashOnDelivery", 0, line(p1, 1)), f.salesman.ID)
	require.NoError(t, err)

	summaries, err := f.svc.ShopOrdersSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byShop := map[primitive.ObjectID]models.ShopOrdersSummary{}
	for _, s := range summaries {
		byShop[s.Shop.ID] = s
	}

	s1 := byShop[f.shop.ID]
	assert.EqualValues(t, 3, s1.OrderCount)
	assert.Equal(t, utility.Money(400), s1.TotalAmount)
	assert.EqualValues(t, 2, s1.Half.Count)
	assert.Equal(t, utility.Money(150), s1.Half.PaymentAmount)
	assert.Equal(t, utility.Money(300), s1.Half.TotalAmount)
	assert.EqualValues(t, 1, s1.CashOnDelivery.Count)
	assert.EqualValues(t, 0, s1.Full.Count)

	s2 := byShop[empty.ID]
	assert.EqualValues(t, 0, s2.OrderCount)
	assert.Equal(t, utility.Money(0), s2.TotalAmount)
}

func TestListOrders_FiltersAndMine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.product(t, "P1", 100, 100)
	other := primitive.NewObjectID()

	_, err := f.svc.PlaceOrder(ctx, f.input("full", 0, line(p1, 1)), f.salesman.ID)
	require.NoError(t, err)
	_, err = f.svc.PlaceOrder(ctx, f.input("full", 0, line(p1, 1)), other)
	require.NoError(t, err)

	all, err := f.svc.ListOrders(ctx, models.OrderFilter{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)

	mine, err := f.svc.ListMyOrders(ctx, authmodels.Principal{ID: f.salesman.ID, Role: authmodels.RoleSalesman}, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, mine.Total)
	assert.Equal(t, "Sale", mine.Items[0].Salesman.Name)

	// Salesman không còn tồn tại thì chỉ giữ lại ID
	byOther, err := f.svc.ListOrders(ctx, models.OrderFilter{Salesman: other}, 1, 10)
	require.NoError(t, err)
	require.Len(t, byOther.Items, 1)
	assert.Equal(t, other, byOther.Items[0].Salesman.ID)
	assert.Empty(t, byOther.Items[0].Salesman.Name)
}

func TestPaymentTypes(t *testing.T) {
	f := newFixture(t)
	types := f.svc.PaymentTypes()
	require.Len(t, types, 3)
	assert.Equal(t, models.PaymentCashOnDelivery, types[2].Type)
	assert.Equal(t, 3, types[2].ID)
}
