// Package storetest chứa các kho dữ liệu in-memory dùng cho test service và router.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	authmodels "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	"github.com/tanavishali52/BE-saleman/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// paginate cắt trang từ danh sách đã sắp xếp
func paginate[T any](all []T, page, limit int64) *basemodels.PaginateResult[T] {
	page, limit = basemodels.NormalizePage(page, limit)
	total := int64(len(all))
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return basemodels.NewPaginateResult(append([]T(nil), all[start:end]...), page, limit, total)
}

// clock trả về thời điểm tăng dần để thứ tự "mới nhất trước" ổn định trong test
type clock struct {
	last int64
}

func (c *clock) next() int64 {
	now := time.Now().UnixMilli()
	if now <= c.last {
		now = c.last + 1
	}
	c.last = now
	return now
}

// Users là UserRepository in-memory
type Users struct {
	mu    sync.Mutex
	clk   clock
	items map[primitive.ObjectID]authmodels.User
}

// NewUsers tạo kho người dùng rỗng
func NewUsers() *Users {
	return &Users{items: map[primitive.ObjectID]authmodels.User{}}
}

// duplicate mô phỏng index unique sparse trên email và idCardNumber
func (s *Users) duplicate(u authmodels.User) error {
	for _, other := range s.items {
		if other.ID == u.ID {
			continue
		}
		if u.Email != "" && other.Email == u.Email {
			return common.NewAlreadyExistsError("email")
		}
		if u.IDCardNumber != "" && other.IDCardNumber == u.IDCardNumber {
			return common.NewAlreadyExistsError("idCardNumber")
		}
	}
	return nil
}

func (s *Users) Create(_ context.Context, user authmodels.User) (authmodels.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if err := s.duplicate(user); err != nil {
		return authmodels.User{}, err
	}
	now := s.clk.next()
	user.CreatedAt, user.UpdatedAt = now, now
	s.items[user.ID] = user
	return user, nil
}

func (s *Users) FindByID(_ context.Context, id primitive.ObjectID) (authmodels.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.items[id]
	if !ok {
		return authmodels.User{}, common.ErrUserNotFound
	}
	return user, nil
}

func (s *Users) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]authmodels.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []authmodels.User{}
	for _, id := range ids {
		if user, ok := s.items[id]; ok {
			out = append(out, user)
		}
	}
	return out, nil
}

func (s *Users) FindOne(_ context.Context, filter authmodels.UserFilter) (authmodels.User, error) {
	if !filter.Identifies() {
		return authmodels.User{}, common.ErrUserNotFound
	}
	user, ok := s.first(filter)
	if !ok {
		return authmodels.User{}, common.ErrUserNotFound
	}
	return user, nil
}

func (s *Users) Exists(_ context.Context, filter authmodels.UserFilter) (bool, error) {
	_, ok := s.first(filter)
	return ok, nil
}

func (s *Users) first(filter authmodels.UserFilter) (authmodels.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.items {
		if filter.Matches(user) {
			return user, true
		}
	}
	return authmodels.User{}, false
}

func (s *Users) List(_ context.Context, filter authmodels.UserFilter, page, limit int64) (*basemodels.PaginateResult[authmodels.User], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []authmodels.User
	for _, user := range s.items {
		if filter.Matches(user) {
			all = append(all, user)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt > all[j].CreatedAt })
	return paginate(all, page, limit), nil
}

func (s *Users) Update(_ context.Context, id primitive.ObjectID, update authmodels.UserUpdate) (authmodels.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.items[id]
	if !ok {
		return authmodels.User{}, common.ErrUserNotFound
	}
	update.Apply(&user)
	if err := s.duplicate(user); err != nil {
		return authmodels.User{}, err
	}
	user.UpdatedAt = s.clk.next()
	s.items[id] = user
	return user, nil
}

func (s *Users) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return common.ErrUserNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *Users) ClearExpiredResetCodes(_ context.Context, now int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cleared int64
	for id, user := range s.items {
		if user.ResetCodeExpiry != 0 && user.ResetCodeExpiry <= now {
			authmodels.ClearResetCode().Apply(&user)
			s.items[id] = user
			cleared++
		}
	}
	return cleared, nil
}

// Count trả về số người dùng đang lưu
func (s *Users) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
