package authsvc

import (
	"context"
	"errors"

	authdto "github.com/tanavishali52/BE-saleman/internal/api/auth/dto"
	models "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	basemodels "github.com/tanavishali52/BE-saleman/internal/api/base/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalesmanService quản lý tài khoản salesman (chỉ admin dùng)
type SalesmanService struct {
	users UserRepository
}

// NewSalesmanService tạo SalesmanService
func NewSalesmanService(users UserRepository) *SalesmanService {
	return &SalesmanService{users: users}
}

// checkUnique kiểm tra email / số CMND chưa được người khác dùng
func (s *SalesmanService) checkUnique(ctx context.Context, email, idCard string, exclude primitive.ObjectID) error {
	if email != "" {
		exists, err := s.users.Exists(ctx, models.UserFilter{Email: email, ExcludeID: exclude})
		if err != nil {
			return err
		}
		if exists {
			return common.NewAlreadyExistsError("email")
		}
	}
	if idCard != "" {
		exists, err := s.users.Exists(ctx, models.UserFilter{IDCardNumber: idCard, ExcludeID: exclude})
		if err != nil {
			return err
		}
		if exists {
			return common.NewAlreadyExistsError("idCardNumber")
		}
	}
	return nil
}

// Create tạo tài khoản salesman mới
func (s *SalesmanService) Create(ctx context.Context, input *authdto.CreateSalesmanInput) (models.User, error) {
	if err := utility.CheckPasswordPolicy(input.Password); err != nil {
		return models.User{}, err
	}

	email := utility.NormalizeEmail(input.Email)
	if err := s.checkUnique(ctx, email, input.IDCardNumber, primitive.NilObjectID); err != nil {
		return models.User{}, err
	}

	hash, err := utility.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.Create(ctx, models.User{
		Name:         input.Name,
		Phone:        input.Phone,
		Address:      input.Address,
		Email:        email,
		IDCardNumber: input.IDCardNumber,
		Password:     hash,
		Role:         models.RoleSalesman,
		IsActive:     true,
	})
	if err != nil {
		return models.User{}, err
	}

	logger.WithModuleContext(ctx, "auth").WithField("salesman_id", user.ID.Hex()).Info("✅ [AUTH] Tạo tài khoản salesman")
	return user, nil
}

// List trả về danh sách salesman có phân trang
func (s *SalesmanService) List(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[models.User], error) {
	return s.users.List(ctx, models.UserFilter{Role: models.RoleSalesman}, page, limit)
}

// Get lấy salesman theo id. Người dùng không phải salesman được coi như không tồn tại.
func (s *SalesmanService) Get(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if user.Role != models.RoleSalesman {
		return models.User{}, common.ErrUserNotFound
	}
	return user, nil
}

// Update cập nhật thông tin salesman, kiểm tra lại email / số CMND trùng
func (s *SalesmanService) Update(ctx context.Context, id primitive.ObjectID, input *authdto.UpdateSalesmanInput) (models.User, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return models.User{}, err
	}

	update := models.UserUpdate{
		Name:         input.Name,
		Phone:        input.Phone,
		Address:      input.Address,
		IDCardNumber: input.IDCardNumber,
	}
	var email, idCard string
	if input.Email != nil {
		email = utility.NormalizeEmail(*input.Email)
		update.Email = &email
	}
	if input.IDCardNumber != nil {
		idCard = *input.IDCardNumber
	}
	if err := s.checkUnique(ctx, email, idCard, id); err != nil {
		return models.User{}, err
	}

	return s.users.Update(ctx, id, update)
}

// Delete xóa hẳn tài khoản salesman
func (s *SalesmanService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

// SetStatus bật/tắt tài khoản salesman. Khóa tài khoản thì phiên đăng nhập bị hủy.
func (s *SalesmanService) SetStatus(ctx context.Context, id primitive.ObjectID, active bool) (models.User, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return models.User{}, err
	}
	user, err := s.users.Update(ctx, id, models.SetActive(active))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.User{}, common.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
