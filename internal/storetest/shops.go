package storetest

import (
	"context"
	"sort"
	"sync"

	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	shopmodels "github.com/tanavishali52/BE-saleman/internal/api/shop/models"
	"github.com/tanavishali52/BE-saleman/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shops là ShopRepository in-memory
type Shops struct {
	mu    sync.Mutex
	clk   clock
	items map[primitive.ObjectID]shopmodels.Shop
}

// NewShops tạo kho cửa hàng rỗng
func NewShops() *Shops {
	return &Shops{items: map[primitive.ObjectID]shopmodels.Shop{}}
}

func (s *Shops) duplicate(shop shopmodels.Shop) error {
	for _, other := range s.items {
		if other.ID != shop.ID && other.CNIC == shop.CNIC {
			return common.NewAlreadyExistsError("cnic")
		}
	}
	return nil
}

func (s *Shops) Create(_ context.Context, shop shopmodels.Shop) (shopmodels.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if shop.ID.IsZero() {
		shop.ID = primitive.NewObjectID()
	}
	if err := s.duplicate(shop); err != nil {
		return shopmodels.Shop{}, err
	}
	now := s.clk.next()
	shop.CreatedAt, shop.UpdatedAt = now, now
	s.items[shop.ID] = shop
	return shop, nil
}

func (s *Shops) FindByID(_ context.Context, id primitive.ObjectID) (shopmodels.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.items[id]
	if !ok {
		return shopmodels.Shop{}, common.ErrShopNotFound
	}
	return shop, nil
}

func (s *Shops) sorted(filter shopmodels.ShopFilter) []shopmodels.Shop {
	all := []shopmodels.Shop{}
	for _, shop := range s.items {
		if filter.Matches(shop) {
			all = append(all, shop)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt > all[j].CreatedAt })
	return all
}

func (s *Shops) FindAll(_ context.Context) ([]shopmodels.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.sorted(shopmodels.ShopFilter{})
	sort.SliceStable(all, func(i, j int) bool { return all[i].ShopName < all[j].ShopName })
	return all, nil
}

func (s *Shops) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]shopmodels.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []shopmodels.Shop{}
	for _, id := range ids {
		if shop, ok := s.items[id]; ok {
			out = append(out, shop)
		}
	}
	return out, nil
}

func (s *Shops) Exists(_ context.Context, filter shopmodels.ShopFilter) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sorted(filter)) > 0, nil
}

func (s *Shops) List(_ context.Context, filter shopmodels.ShopFilter, page, limit int64) (*basemodels.PaginateResult[shopmodels.Shop], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paginate(s.sorted(filter), page, limit), nil
}

func (s *Shops) Update(_ context.Context, id primitive.ObjectID, update shopmodels.ShopUpdate) (shopmodels.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.items[id]
	if !ok {
		return shopmodels.Shop{}, common.ErrShopNotFound
	}
	update.Apply(&shop)
	if err := s.duplicate(shop); err != nil {
		return shopmodels.Shop{}, err
	}
	shop.UpdatedAt = s.clk.next()
	s.items[id] = shop
	return shop, nil
}

func (s *Shops) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return common.ErrShopNotFound
	}
	delete(s.items, id)
	return nil
}
