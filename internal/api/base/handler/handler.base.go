package basehdl

// Package basehdl cung cấp các tiện ích dùng chung cho handler: parse/validate request,
// lấy tham số và chuẩn hóa response.

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	authmodels "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/global"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseHandler chứa các hàm dùng chung, được embed vào handler của từng module
type BaseHandler struct {
	validate *validator.Validate
}

// NewBaseHandler tạo BaseHandler dùng validator toàn cục (khởi tạo nếu chưa có)
func NewBaseHandler() *BaseHandler {
	if global.Validate == nil {
		global.InitValidator()
	}
	return &BaseHandler{validate: global.Validate}
}

// validationMessages là thông báo theo từng tag validate
var validationMessages = map[string]string{
	"required":        "Trường %s là bắt buộc",
	"email":           "Trường %s phải là email hợp lệ",
	"min":             "Trường %s không đạt giá trị/độ dài tối thiểu",
	"max":             "Trường %s vượt quá giá trị/độ dài cho phép",
	"gte":             "Trường %s phải lớn hơn hoặc bằng %s",
	"oneof":           "Trường %s phải là một trong các giá trị: %s",
	"object_id":       "Trường %s phải là ObjectID hợp lệ",
	"strong_password": "Trường %s phải có ít nhất 8 ký tự, gồm chữ cái, chữ số và ký tự đặc biệt",
	"no_xss":          "Trường %s chứa nội dung không cho phép",
	"dive":            "Trường %s không hợp lệ",
	"len":             "Trường %s phải có độ dài %s",
	"numeric":         "Trường %s chỉ được chứa chữ số",
	"payment_type":    "Trường %s phải là một trong các giá trị: half, full, cashOnDelivery",
}

// toValidationError chuyển lỗi của validator thành common.Error với thông báo theo field
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return common.WithDetails(common.ErrInvalidInput, err.Error())
	}

	fe := verrs[0]
	field := fe.Namespace()
	// Bỏ tên struct gốc khỏi namespace (CreateOrderInput.items[0].quantity -> items[0].quantity)
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	// Mật khẩu yếu dùng mã lỗi riêng
	if fe.Tag() == "strong_password" {
		return common.WithDetails(common.ErrWeakPassword, map[string]string{"field": field})
	}

	tmpl, ok := validationMessages[fe.Tag()]
	if !ok {
		tmpl = "Trường %s không hợp lệ"
	}
	var msg string
	if fe.Param() != "" && (fe.Tag() == "gte" || fe.Tag() == "oneof" || fe.Tag() == "len") {
		msg = fmt.Sprintf(tmpl, field, fe.Param())
	} else {
		msg = fmt.Sprintf(tmpl, field)
	}
	return common.NewValidationError(field, msg)
}

// ValidateInput validate struct theo tag `validate`
func (h *BaseHandler) ValidateInput(input interface{}) error {
	if err := h.validate.Struct(input); err != nil {
		return toValidationError(err)
	}
	return nil
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		// Lỗi nghiệp vụ từ UnmarshalJSON (ví dụ số tiền quá 2 chữ số thập phân) giữ nguyên
		if common.HasCode(err, common.ErrCodeValidationInput) {
			return err
		}
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}

	return h.ValidateInput(input)
}

// ParseObjectIDParam lấy ObjectID từ URI params
func (h *BaseHandler) ParseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	return utility.ParseObjectID(c.Params(name))
}

// ParsePagination lấy page và limit từ query string
func (h *BaseHandler) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil {
		limit = 10
	}
	return page, limit
}

// ParseOptionalBoolQuery đọc query dạng bool, trả về nil nếu không có
func (h *BaseHandler) ParseOptionalBoolQuery(c fiber.Ctx, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, common.NewValidationError(name, fmt.Sprintf("Trường %s phải là true hoặc false", name))
	}
	return &v, nil
}

// CurrentPrincipal lấy người dùng đang đăng nhập (do AuthMiddleware gắn vào context)
func (h *BaseHandler) CurrentPrincipal(c fiber.Ctx) (authmodels.Principal, error) {
	principal, ok := authmodels.PrincipalFromContext(c.Context())
	if !ok {
		return authmodels.Principal{}, common.ErrTokenMissing
	}
	return principal, nil
}
