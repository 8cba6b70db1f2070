package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Principal là người dùng đang thực hiện request (đã qua xác thực)
type Principal struct {
	ID   primitive.ObjectID
	Role Role
}

// IsAdmin cho biết principal có vai trò admin
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type principalKey struct{}

// WithPrincipal gắn principal vào context để truyền xuống tầng service
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext lấy principal từ context
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	if ctx == nil {
		return Principal{}, false
	}
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
