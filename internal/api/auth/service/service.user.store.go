// Package authsvc - lưu trữ người dùng, token, xác thực và quản lý salesman.
package authsvc

import (
	"context"
	"errors"
	"fmt"

	models "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	basesvc "github.com/tanavishali52/BE-saleman/internal/api/base/service"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository là kho lưu người dùng mà các service auth cần.
// FindOne/FindByID trả về common.ErrUserNotFound khi không có bản ghi.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindOne(ctx context.Context, filter models.UserFilter) (models.User, error)
	Exists(ctx context.Context, filter models.UserFilter) (bool, error)
	List(ctx context.Context, filter models.UserFilter, page, limit int64) (*basemodels.PaginateResult[models.User], error)
	Update(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ClearExpiredResetCodes(ctx context.Context, now int64) (int64, error)
}

// UserStore triển khai UserRepository trên MongoDB
type UserStore struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserStore tạo UserStore từ collection users trong registry
func NewUserStore() (*UserStore, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %w", common.ErrNotFound)
	}
	return NewUserStoreWithCollection(collection), nil
}

// NewUserStoreWithCollection tạo UserStore từ collection cho trước
func NewUserStoreWithCollection(collection *mongo.Collection) *UserStore {
	return &UserStore{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](collection)}
}

// userFilterToBson chuyển UserFilter thành filter MongoDB
func userFilterToBson(f models.UserFilter) bson.M {
	filter := bson.M{}
	if !f.ID.IsZero() {
		filter["_id"] = f.ID
	}
	if f.Email != "" {
		filter["email"] = f.Email
	}
	if f.IDCardNumber != "" {
		filter["idCardNumber"] = f.IDCardNumber
	}
	if f.RefreshToken != "" {
		filter["refreshToken"] = f.RefreshToken
	}
	if f.Role != "" {
		filter["role"] = f.Role
	}
	if !f.ExcludeID.IsZero() {
		if id, ok := filter["_id"]; ok {
			filter["_id"] = bson.M{"$eq": id, "$ne": f.ExcludeID}
		} else {
			filter["_id"] = bson.M{"$ne": f.ExcludeID}
		}
	}
	return filter
}

// userUpdateToBson chuyển UserUpdate thành $set/$unset
func userUpdateToBson(up models.UserUpdate) *basesvc.UpdateData {
	set := map[string]interface{}{}
	unset := map[string]interface{}{}

	setOrUnset := func(field string, v *string) {
		if v == nil {
			return
		}
		if *v == "" {
			unset[field] = ""
			return
		}
		set[field] = *v
	}

	if up.Name != nil {
		set["name"] = *up.Name
	}
	if up.Phone != nil {
		set["phone"] = *up.Phone
	}
	if up.Address != nil {
		set["address"] = *up.Address
	}
	setOrUnset("email", up.Email)
	setOrUnset("idCardNumber", up.IDCardNumber)
	if up.Password != nil {
		set["password"] = *up.Password
	}
	if up.IsActive != nil {
		set["isActive"] = *up.IsActive
	}
	setOrUnset("refreshToken", up.RefreshToken)
	if up.ResetCode != nil {
		set["resetCode"] = *up.ResetCode
	}
	if up.ResetCodeExpiry != nil {
		set["resetCodeExpiry"] = *up.ResetCodeExpiry
	}
	if up.ClearResetCode {
		unset["resetCode"] = ""
		unset["resetCodeExpiry"] = ""
	}

	update := &basesvc.UpdateData{Set: set}
	if len(unset) > 0 {
		update.Unset = unset
	}
	return update
}

// userNotFound đổi ErrNotFound chung thành ErrUserNotFound
func userNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrUserNotFound
	}
	return err
}

// Create thêm người dùng mới
func (s *UserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	return s.InsertOne(ctx, user)
}

// FindByID tìm người dùng theo ID
func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	user, err := s.FindOneById(ctx, id)
	return user, userNotFound(err)
}

// FindByIDs tìm nhiều người dùng theo danh sách ID
func (s *UserStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	return s.FindManyByIds(ctx, ids)
}

// FindOne tìm người dùng theo filter
func (s *UserStore) FindOne(ctx context.Context, filter models.UserFilter) (models.User, error) {
	// Filter rỗng sẽ khớp một user bất kỳ
	if !filter.Identifies() {
		return models.User{}, common.ErrUserNotFound
	}
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, userFilterToBson(filter), nil)
	return user, userNotFound(err)
}

// Exists kiểm tra có người dùng thỏa filter không
func (s *UserStore) Exists(ctx context.Context, filter models.UserFilter) (bool, error) {
	return s.DocumentExists(ctx, userFilterToBson(filter))
}

// List liệt kê người dùng có phân trang, mới nhất trước
func (s *UserStore) List(ctx context.Context, filter models.UserFilter, page, limit int64) (*basemodels.PaginateResult[models.User], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, userFilterToBson(filter), page, limit, opts)
}

// Update cập nhật một phần người dùng, trả về bản ghi sau cập nhật
func (s *UserStore) Update(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (models.User, error) {
	user, err := s.UpdateById(ctx, id, userUpdateToBson(update))
	return user, userNotFound(err)
}

// Delete xóa người dùng
func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return userNotFound(s.DeleteById(ctx, id))
}

// ClearExpiredResetCodes xóa các mã reset đã hết hạn, trả về số bản ghi được dọn
func (s *UserStore) ClearExpiredResetCodes(ctx context.Context, now int64) (int64, error) {
	filter := bson.M{"resetCodeExpiry": bson.M{"$lte": now}}
	return s.UpdateMany(ctx, filter, userUpdateToBson(models.ClearResetCode()))
}
