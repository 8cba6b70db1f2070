package storetest

import (
	"context"
	"sort"
	"sync"

	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	catalogmodels "github.com/tanavishali52/BE-saleman/internal/api/catalog/models"
	"github.com/tanavishali52/BE-saleman/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories là CategoryRepository in-memory
type Categories struct {
	mu    sync.Mutex
	clk   clock
	items map[primitive.ObjectID]catalogmodels.Category
}

// NewCategories tạo kho danh mục rỗng
func NewCategories() *Categories {
	return &Categories{items: map[primitive.ObjectID]catalogmodels.Category{}}
}

func (s *Categories) Create(_ context.Context, category catalogmodels.Category) (catalogmodels.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.items {
		if other.Name == category.Name {
			return catalogmodels.Category{}, common.NewAlreadyExistsError("name")
		}
	}
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	now := s.clk.next()
	category.CreatedAt, category.UpdatedAt = now, now
	s.items[category.ID] = category
	return category, nil
}

func (s *Categories) FindByID(_ context.Context, id primitive.ObjectID) (catalogmodels.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.items[id]
	if !ok {
		return catalogmodels.Category{}, common.ErrCategoryNotFound
	}
	return category, nil
}

func (s *Categories) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]catalogmodels.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []catalogmodels.Category{}
	for _, id := range ids {
		if category, ok := s.items[id]; ok {
			out = append(out, category)
		}
	}
	return out, nil
}

func (s *Categories) ExistsByName(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, category := range s.items {
		if category.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *Categories) FindAll(_ context.Context) ([]catalogmodels.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := []catalogmodels.Category{}
	for _, category := range s.items {
		all = append(all, category)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// Items là ItemRepository in-memory. IncrementErr dùng để giả lập lỗi khi hoàn kho.
type Items struct {
	mu    sync.Mutex
	clk   clock
	items map[primitive.ObjectID]catalogmodels.Item

	IncrementErr error
}

// NewItems tạo kho sản phẩm rỗng
func NewItems() *Items {
	return &Items{items: map[primitive.ObjectID]catalogmodels.Item{}}
}

func (s *Items) Create(_ context.Context, item catalogmodels.Item) (catalogmodels.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	now := s.clk.next()
	item.CreatedAt, item.UpdatedAt = now, now
	s.items[item.ID] = item
	return item, nil
}

func (s *Items) FindByID(_ context.Context, id primitive.ObjectID) (catalogmodels.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return catalogmodels.Item{}, common.ErrProductNotFound
	}
	return item, nil
}

func (s *Items) List(_ context.Context, filter catalogmodels.ItemFilter, page, limit int64) (*basemodels.PaginateResult[catalogmodels.Item], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := []catalogmodels.Item{}
	for _, item := range s.items {
		if filter.Matches(item) {
			all = append(all, item)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt > all[j].CreatedAt })
	return paginate(all, page, limit), nil
}

func (s *Items) Update(_ context.Context, id primitive.ObjectID, update catalogmodels.ItemUpdate) (catalogmodels.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return catalogmodels.Item{}, common.ErrProductNotFound
	}
	update.Apply(&item)
	item.UpdatedAt = s.clk.next()
	s.items[id] = item
	return item, nil
}

func (s *Items) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return common.ErrProductNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *Items) DecrementStock(_ context.Context, id primitive.ObjectID, qty int64) (catalogmodels.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok || item.Quantity < qty {
		return catalogmodels.Item{}, common.ErrNotFound
	}
	before := item
	item.Quantity -= qty
	item.UpdatedAt = s.clk.next()
	s.items[id] = item
	return before, nil
}

func (s *Items) IncrementStock(_ context.Context, id primitive.ObjectID, qty int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.IncrementErr != nil {
		return s.IncrementErr
	}
	item, ok := s.items[id]
	if !ok {
		return common.ErrProductNotFound
	}
	item.Quantity += qty
	s.items[id] = item
	return nil
}

// Quantity trả về tồn kho hiện tại của sản phẩm (-1 nếu không có)
func (s *Items) Quantity(id primitive.ObjectID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return -1
	}
	return item.Quantity
}
