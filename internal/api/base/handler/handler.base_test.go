package basehdl

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineInput struct {
	ProductID string `json:"productId" validate:"required,object_id"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

type sampleOrderInput struct {
	ShopID string      `json:"shopId" validate:"required,object_id"`
	Items  []lineInput `json:"items" validate:"required,min=1,dive"`
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func newTestApp() *fiber.App {
	h := NewBaseHandler()
	app := fiber.New()
	app.Post("/echo", func(c fiber.Ctx) error {
		var input sampleOrderInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponseStatus(c, common.StatusCreated, input, nil)
		return nil
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		return h.SafeHandler(c, func() error {
			panic("boom")
		})
	})
	app.Delete("/none", func(c fiber.Ctx) error {
		h.HandleResponseStatus(c, common.StatusNoContent, nil, nil)
		return nil
	})
	return app
}

func TestParseRequestBody_FieldSpecificMessage(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(
		`{"shopId":"64b7f0c2a1b2c3d4e5f60718","items":[{"productId":"64b7f0c2a1b2c3d4e5f60719","quantity":0}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, common.ErrCodeValidationInput.Code, body["code"])
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["message"], "items[0].quantity")
}

func TestParseRequestBody_MalformedJSON(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"shopId":`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, common.ErrCodeValidationFormat.Code, decodeBody(t, resp)["code"])
}

func TestHandleResponseStatus_Created(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(
		`{"shopId":"64b7f0c2a1b2c3d4e5f60718","items":[{"productId":"64b7f0c2a1b2c3d4e5f60719","quantity":2}]}`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(201), body["code"])
	assert.Equal(t, "success", body["status"])
}

func TestSafeHandler_RecoversPanic(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, common.ErrCodeInternalServer.Code, decodeBody(t, resp)["code"])
}

func TestHandleResponseStatus_NoContent(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/none", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestErrorBody_HidesWrappedError(t *testing.T) {
	status, body := ErrorBody(common.NewError(common.ErrCodeDatabase, common.MsgDatabaseError, 500, io.EOF))
	assert.Equal(t, 500, status)
	assert.Nil(t, body["details"])

	status, body = ErrorBody(io.EOF)
	assert.Equal(t, 500, status)
	assert.Equal(t, common.ErrCodeInternalServer.Code, body["code"])
}

func TestErrorBody_MissingStatusDefaultsTo500(t *testing.T) {
	status, body := ErrorBody(common.NewError(common.ErrCodeDatabase, common.MsgDatabaseError, 0, nil))
	assert.Equal(t, common.StatusInternalServerError, status)
	assert.Equal(t, common.ErrCodeDatabase.Code, body["code"])
}

func TestParseRequestBody_MoneyErrorKeepsValidationCode(t *testing.T) {
	h := NewBaseHandler()
	app := fiber.New()
	app.Post("/pay", func(c fiber.Ctx) error {
		var input struct {
			Amount utility.Money `json:"amount"`
		}
		h.HandleResponse(c, input, h.ParseRequestBody(c, &input))
		return nil
	})

	for _, raw := range []string{`{"amount": 1.005}`, `{"amount": 184467440737095516.16}`} {
		req := httptest.NewRequest(http.MethodPost, "/pay", strings.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, raw)
		assert.Equal(t, common.ErrCodeValidationInput.Code, decodeBody(t, resp)["code"], raw)
	}
}
