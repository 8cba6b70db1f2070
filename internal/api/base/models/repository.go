// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang).
package models

// Giới hạn phân trang mặc định
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100
)

// PaginateResult đại diện cho kết quả phân trang
type PaginateResult[T any] struct {
	// Trang hiện tại
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Số lượng mục trong trang hiện tại
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Danh sách các mục
	Items []T `json:"items" bson:"items"`
	// Tổng số mục
	Total int64 `json:"total" bson:"total"`
	// Tổng số trang
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// NormalizePage đưa page/limit về khoảng hợp lệ
func NormalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// NewPaginateResult tạo kết quả phân trang từ danh sách item của trang hiện tại và tổng số
func NewPaginateResult[T any](items []T, page, limit, total int64) *PaginateResult[T] {
	if items == nil {
		items = []T{}
	}

	// total = 0 thì totalPage = 0, ngược lại làm tròn lên
	var totalPage int64
	if total > 0 && limit > 0 {
		totalPage = (total + limit - 1) / limit
	}

	return &PaginateResult[T]{
		Items:     items,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: totalPage,
	}
}

// MapPaginateResult chuyển kết quả phân trang sang kiểu khác (ví dụ model -> response)
func MapPaginateResult[T any, R any](in *PaginateResult[T], fn func(T) R) *PaginateResult[R] {
	items := make([]R, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, fn(item))
	}
	return &PaginateResult[R]{
		Items:     items,
		Page:      in.Page,
		Limit:     in.Limit,
		ItemCount: in.ItemCount,
		Total:     in.Total,
		TotalPage: in.TotalPage,
	}
}
