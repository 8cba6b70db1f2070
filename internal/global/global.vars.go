package global

import (
	"github.com/tanavishali52/BE-saleman/config"
	"github.com/tanavishali52/BE-saleman/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users      string // Tên collection cho người dùng (admin, salesman)
	Shops      string // Tên collection cho cửa hàng
	Categories string // Tên collection cho danh mục sản phẩm
	Items      string // Tên collection cho sản phẩm
	Orders     string // Tên collection cho đơn hàng
}

// All trả về danh sách tên tất cả collection
func (c MongoDB_CollectionName) All() []string {
	return []string{c.Users, c.Shops, c.Categories, c.Items, c.Orders}
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{} // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
