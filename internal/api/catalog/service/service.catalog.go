package catalogsvc

import (
	"context"
	"strings"

	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	catalogdto "github.com/tanavishali52/BE-saleman/internal/api/catalog/dto"
	models "github.com/tanavishali52/BE-saleman/internal/api/catalog/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryService nghiệp vụ danh mục
type CategoryService struct {
	categories CategoryRepository
}

// NewCategoryService tạo CategoryService
func NewCategoryService(categories CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create tạo danh mục, tên không được trùng
func (s *CategoryService) Create(ctx context.Context, input *catalogdto.CreateCategoryInput) (models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Category{}, common.NewValidationError("name", "Trường name là bắt buộc")
	}

	exists, err := s.categories.ExistsByName(ctx, name)
	if err != nil {
		return models.Category{}, err
	}
	if exists {
		return models.Category{}, common.NewAlreadyExistsError("name")
	}

	category, err := s.categories.Create(ctx, models.Category{Name: name})
	if err != nil {
		return models.Category{}, err
	}
	logger.WithModuleContext(ctx, "catalog").WithField("category_id", category.ID.Hex()).Info("📁 [CATALOG] Tạo danh mục")
	return category, nil
}

// List trả về toàn bộ danh mục
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

// ItemService nghiệp vụ sản phẩm
type ItemService struct {
	items      ItemRepository
	categories CategoryRepository
}

// NewItemService tạo ItemService
func NewItemService(items ItemRepository, categories CategoryRepository) *ItemService {
	return &ItemService{items: items, categories: categories}
}

// Create tạo sản phẩm; danh mục phải tồn tại
func (s *ItemService) Create(ctx context.Context, input *catalogdto.CreateItemInput) (models.ItemView, error) {
	categoryID, err := utility.ParseObjectID(input.CategoryType)
	if err != nil {
		return models.ItemView{}, common.NewValidationError("categoryType", "Trường categoryType phải là ObjectID hợp lệ")
	}
	if input.Price.IsNegative() {
		return models.ItemView{}, common.NewValidationError("price", "Trường price phải lớn hơn hoặc bằng 0")
	}
	if input.Quantity < 0 {
		return models.ItemView{}, common.NewValidationError("quantity", "Trường quantity phải lớn hơn hoặc bằng 0")
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return models.ItemView{}, err
	}

	item, err := s.items.Create(ctx, models.Item{
		Name:         input.Name,
		CategoryType: categoryID,
		Price:        input.Price,
		Quantity:     input.Quantity,
	})
	if err != nil {
		return models.ItemView{}, err
	}

	logger.WithModuleContext(ctx, "catalog").WithField("item_id", item.ID.Hex()).Info("📦 [CATALOG] Tạo sản phẩm")
	return models.ItemView{Item: item, Category: &models.CategorySummary{ID: category.ID, Name: category.Name}}, nil
}

// withCategories join thông tin danh mục vào danh sách sản phẩm
func (s *ItemService) withCategories(ctx context.Context, items []models.Item) ([]models.ItemView, error) {
	ids := make([]primitive.ObjectID, 0, len(items))
	seen := map[primitive.ObjectID]bool{}
	for _, it := range items {
		if !seen[it.CategoryType] {
			seen[it.CategoryType] = true
			ids = append(ids, it.CategoryType)
		}
	}

	categories, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	views := make([]models.ItemView, 0, len(items))
	for _, it := range items {
		view := models.ItemView{Item: it}
		if c, ok := byID[it.CategoryType]; ok {
			view.Category = &models.CategorySummary{ID: c.ID, Name: c.Name}
		}
		views = append(views, view)
	}
	return views, nil
}

// List liệt kê sản phẩm, có thể lọc theo danh mục
func (s *ItemService) List(ctx context.Context, filter models.ItemFilter, page, limit int64) (*basemodels.PaginateResult[models.ItemView], error) {
	result, err := s.items.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	views, err := s.withCategories(ctx, result.Items)
	if err != nil {
		return nil, err
	}
	return basemodels.NewPaginateResult(views, result.Page, result.Limit, result.Total), nil
}

// Get lấy một sản phẩm
func (s *ItemService) Get(ctx context.Context, id primitive.ObjectID) (models.ItemView, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return models.ItemView{}, err
	}
	views, err := s.withCategories(ctx, []models.Item{item})
	if err != nil {
		return models.ItemView{}, err
	}
	return views[0], nil
}

// Update cập nhật sản phẩm; danh mục mới (nếu có) phải tồn tại
func (s *ItemService) Update(ctx context.Context, id primitive.ObjectID, input *catalogdto.UpdateItemInput) (models.ItemView, error) {
	if _, err := s.items.FindByID(ctx, id); err != nil {
		return models.ItemView{}, err
	}

	update := models.ItemUpdate{Name: input.Name, Price: input.Price, Quantity: input.Quantity}
	if input.Price != nil && input.Price.IsNegative() {
		return models.ItemView{}, common.NewValidationError("price", "Trường price phải lớn hơn hoặc bằng 0")
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return models.ItemView{}, common.NewValidationError("quantity", "Trường quantity phải lớn hơn hoặc bằng 0")
	}
	if input.CategoryType != nil {
		categoryID, err := utility.ParseObjectID(*input.CategoryType)
		if err != nil {
			return models.ItemView{}, common.NewValidationError("categoryType", "Trường categoryType phải là ObjectID hợp lệ")
		}
		if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
			return models.ItemView{}, err
		}
		update.CategoryType = &categoryID
	}

	item, err := s.items.Update(ctx, id, update)
	if err != nil {
		return models.ItemView{}, err
	}
	views, err := s.withCategories(ctx, []models.Item{item})
	if err != nil {
		return models.ItemView{}, err
	}
	return views[0], nil
}

// Delete xóa sản phẩm
func (s *ItemService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.items.Delete(ctx, id)
}
