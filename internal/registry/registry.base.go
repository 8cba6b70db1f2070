// Package registry cung cấp registry generic, thread-safe để quản lý các instance dùng chung
// (ví dụ các *mongo.Collection) theo tên.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tanavishali52/BE-saleman/internal/common"
)

// Registry là một registry generic an toàn khi dùng đồng thời
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo và trả về một registry mới
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký item theo tên. Trả về isNew=false nếu đã ghi đè item cũ.
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo tên
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// Names trả về danh sách tên đã đăng ký (đã sắp xếp)
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
