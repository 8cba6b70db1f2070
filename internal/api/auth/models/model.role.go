// Package models - vai trò (Role), người dùng (User), principal trong context thuộc domain auth.
package models

import (
	"fmt"
	"strings"
)

// Role là vai trò của người dùng trong hệ thống (tập đóng: admin, salesman)
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSalesman Role = "salesman"
)

// Roles trả về tất cả vai trò hợp lệ
func Roles() []Role {
	return []Role{RoleAdmin, RoleSalesman}
}

// Valid cho biết role có thuộc tập vai trò hợp lệ không
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSalesman:
		return true
	}
	return false
}

// String trả về tên role
func (r Role) String() string {
	return string(r)
}

// ParseRole chuyển chuỗi thành Role, trả về lỗi nếu không hợp lệ
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("role không hợp lệ: %q", s)
	}
	return r, nil
}

// RoleSet là tập role được phép truy cập một route
type RoleSet map[Role]struct{}

// NewRoleSet tạo RoleSet từ danh sách role. Panic nếu có role không hợp lệ (lỗi khai báo route).
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		if !r.Valid() {
			panic(fmt.Sprintf("role không hợp lệ khi khai báo route: %q", r))
		}
		set[r] = struct{}{}
	}
	return set
}

// Allows cho biết role có nằm trong tập không
func (s RoleSet) Allows(r Role) bool {
	_, ok := s[r]
	return ok
}
