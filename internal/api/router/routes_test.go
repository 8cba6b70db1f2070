package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authhdl "github.com/tanavishali52/BE-saleman/internal/api/auth/handler"
	authrouter "github.com/tanavishali52/BE-saleman/internal/api/auth/router"
	authsvc "github.com/tanavishali52/BE-saleman/internal/api/auth/service"
	cataloghdl "github.com/tanavishali52/BE-saleman/internal/api/catalog/handler"
	catalogrouter "github.com/tanavishali52/BE-saleman/internal/api/catalog/router"
	catalogsvc "github.com/tanavishali52/BE-saleman/internal/api/catalog/service"
	orderhdl "github.com/tanavishali52/BE-saleman/internal/api/order/handler"
	orderrouter "github.com/tanavishali52/BE-saleman/internal/api/order/router"
	ordersvc "github.com/tanavishali52/BE-saleman/internal/api/order/service"
	apirouter "github.com/tanavishali52/BE-saleman/internal/api/router"
	shophdl "github.com/tanavishali52/BE-saleman/internal/api/shop/handler"
	shoprouter "github.com/tanavishali52/BE-saleman/internal/api/shop/router"
	shopsvc "github.com/tanavishali52/BE-saleman/internal/api/shop/service"
	"github.com/tanavishali52/BE-saleman/internal/storetest"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t   *testing.T
	app *fiber.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := storetest.NewUsers()
	shops := storetest.NewShops()
	categories := storetest.NewCategories()
	items := storetest.NewItems()
	orders := storetest.NewOrders()

	tokens := authsvc.NewTokenService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	auth := authsvc.NewAuthService(users, tokens, nil)

	app := fiber.New()
	err := apirouter.SetupRoutes(app, auth,
		authrouter.Register(authhdl.NewAuthHandler(auth), authhdl.NewSalesmanHandler(authsvc.NewSalesmanService(users))),
		shoprouter.Register(shophdl.NewShopHandler(shopsvc.NewShopService(shops))),
		catalogrouter.Register(cataloghdl.NewCatalogHandler(catalogsvc.NewCategoryService(categories), catalogsvc.NewItemService(items, categories))),
		orderrouter.Register(orderhdl.NewOrderHandler(ordersvc.NewOrderService(orders, items, shops, users))),
	)
	require.NoError(t, err)
	return &testServer{t: t, app: app}
}

// do gửi request JSON và trả về status cùng body đã giải mã
func (s *testServer) do(method, path, token string, body interface{}) (int, map[string]interface{}) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(s.t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func data(body map[string]interface{}) map[string]interface{} {
	d, _ := body["data"].(map[string]interface{})
	return d
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	status, body := s.do(http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, status, body)
	return data(body)["accessToken"].(string)
}

// setup tạo admin + salesman và trả về token của cả hai
func (s *testServer) setup() (adminToken, salesmanToken string) {
	s.t.Helper()

	status, body := s.do(http.MethodPost, "/auth/signup", "", map[string]string{
		"name": "Admin", "phone": "0300", "address": "HQ", "email": "admin@example.com", "password": "Admin@1234",
	})
	require.Equal(s.t, http.StatusCreated, status, body)
	adminToken = s.login("admin@example.com", "Admin@1234")

	status, body = s.do(http.MethodPost, "/admin/create-salesman", adminToken, map[string]string{
		"name": "Sale", "phone": "0301", "address": "Street 1", "idCardNumber": "35202", "email": "sale@example.com", "password": "Sale@1234",
	})
	require.Equal(s.t, http.StatusCreated, status, body)
	salesmanToken = s.login("sale@example.com", "Sale@1234")
	return adminToken, salesmanToken
}

func TestRoutes_AuthorizationGate(t *testing.T) {
	s := newTestServer(t)
	adminToken, salesmanToken := s.setup()

	status, body := s.do(http.MethodGet, "/admin/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "error", body["status"])

	status, _ = s.do(http.MethodGet, "/admin/orders", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(http.MethodGet, "/admin/orders", salesmanToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(http.MethodPost, "/shop", salesmanToken, map[string]string{"shopName": "X"})
	assert.Equal(t, http.StatusForbidden, status)

	// Salesman vẫn dùng được route staff
	status, _ = s.do(http.MethodGet, "/payment-types", salesmanToken, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(http.MethodGet, "/admin/orders", adminToken, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestRoutes_BlockedSalesmanLosesAccess(t *testing.T) {
	s := newTestServer(t)
	adminToken, salesmanToken := s.setup()

	status, body := s.do(http.MethodGet, "/admin/salesman", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	list := data(body)["items"].([]interface{})
	require.Len(t, list, 1)
	id := list[0].(map[string]interface{})["id"].(string)

	status, _ = s.do(http.MethodPatch, "/admin/salesman/"+id+"/status", adminToken, map[string]bool{"isActive": false})
	require.Equal(t, http.StatusOK, status)

	// Token cũ vẫn còn hạn nhưng tài khoản đã bị khóa
	status, _ = s.do(http.MethodGet, "/payment-types", salesmanToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRoutes_OrderScenario(t *testing.T) {
	s := newTestServer(t)
	adminToken, salesmanToken := s.setup()

	status, body := s.do(http.MethodPost, "/shop", adminToken, map[string]string{
		"shopName": "S1", "ownerName": "Owner", "cnic": "111", "phoneNumber": "0302", "address": "A1", "city": "Lahore",
	})
	require.Equal(t, http.StatusCreated, status, body)
	shopID := data(body)["id"].(string)

	status, body = s.do(http.MethodPost, "/category", adminToken, map[string]string{"name": "Drinks"})
	require.Equal(t, http.StatusCreated, status, body)
	categoryID := data(body)["id"].(string)

	status, body = s.do(http.MethodPost, "/item", adminToken, map[string]interface{}{
		"name": "P1", "categoryType": categoryID, "price": 100, "quantity": 10,
	})
	require.Equal(t, http.StatusCreated, status, body)
	productID := data(body)["id"].(string)

	status, body = s.do(http.MethodPost, "/order", salesmanToken, map[string]interface{}{
		"shopId":        shopID,
		"items":         []map[string]interface{}{{"productId": productID, "quantity": 3}},
		"paymentType":   "half",
		"paymentAmount": 150,
	})
	require.Equal(t, http.StatusCreated, status, body)
	order := data(body)
	orderID := order["id"].(string)
	assert.EqualValues(t, 300, order["totalAmount"])
	assert.EqualValues(t, 1, order["paymentTypeId"])
	assert.EqualValues(t, 0, order["amountPaid"])
	assert.Equal(t, "S1", order["shop"].(map[string]interface{})["shopName"])

	status, body = s.do(http.MethodGet, "/item/"+productID, salesmanToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 7, data(body)["quantity"])

	status, body = s.do(http.MethodPatch, "/admin/order/"+orderID+"/payment", adminToken, map[string]interface{}{"amountPaid": 300})
	require.Equal(t, http.StatusOK, status, body)
	assert.EqualValues(t, 300, data(body)["amountPaid"])

	status, body = s.do(http.MethodPatch, "/admin/order/"+orderID+"/payment", adminToken, map[string]interface{}{"amountPaid": 301})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_001", body["code"])

	// Thiếu hàng: không đổi tồn kho
	status, body = s.do(http.MethodPost, "/order", salesmanToken, map[string]interface{}{
		"shopId":        shopID,
		"items":         []map[string]interface{}{{"productId": productID, "quantity": 8}},
		"paymentType":   "full",
		"paymentAmount": 0,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BIZ_003", body["code"])

	status, body = s.do(http.MethodGet, "/item/"+productID, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 7, data(body)["quantity"])

	status, body = s.do(http.MethodGet, "/order/mine", salesmanToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, data(body)["total"])

	status, body = s.do(http.MethodGet, "/admin/shop-orders-summary", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	summaries := body["data"].([]interface{})
	require.Len(t, summaries, 1)
	summary := summaries[0].(map[string]interface{})
	assert.EqualValues(t, 1, summary["orderCount"])
	assert.EqualValues(t, 150, summary["half"].(map[string]interface{})["paymentAmount"])
	assert.EqualValues(t, 0, summary["full"].(map[string]interface{})["count"])
}

func TestRoutes_PlaceOrderRejectsUnknownPaymentType(t *testing.T) {
	s := newTestServer(t)
	_, salesmanToken := s.setup()

	status, body := s.do(http.MethodPost, "/order", salesmanToken, map[string]interface{}{
		"shopId":        "507f1f77bcf86cd799439011",
		"items":         []map[string]interface{}{{"productId": "507f1f77bcf86cd799439012", "quantity": 1}},
		"paymentType":   "monthly",
		"paymentAmount": 0,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_001", body["code"])
}
