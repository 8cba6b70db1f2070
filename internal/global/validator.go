package global

import (
	"reflect"
	"strings"

	ordermodels "github.com/tanavishali52/BE-saleman/internal/api/order/models"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = NewValidator()
}

// NewValidator tạo validator với các rule riêng của hệ thống
func NewValidator() *validator.Validate {
	v := validator.New()

	// Dùng tên field trong JSON khi báo lỗi
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("no_xss", validateNoXSS)
	_ = v.RegisterValidation("strong_password", validateStrongPassword)
	_ = v.RegisterValidation("object_id", validateObjectID)
	_ = v.RegisterValidation("payment_type", validatePaymentType)
	return v
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerhtml",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateStrongPassword kiểm tra mật khẩu theo chính sách chung (xem utility.CheckPasswordPolicy)
func validateStrongPassword(fl validator.FieldLevel) bool {
	return utility.CheckPasswordPolicy(fl.Field().String()) == nil
}

// validateObjectID kiểm tra chuỗi là ObjectID hợp lệ
func validateObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}

// validatePaymentType kiểm tra hình thức thanh toán (half, full, cashOnDelivery)
func validatePaymentType(fl validator.FieldLevel) bool {
	return ordermodels.PaymentType(fl.Field().String()).Valid()
}
