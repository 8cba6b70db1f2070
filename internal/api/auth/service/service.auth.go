package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	authdto "github.com/tanavishali52/BE-saleman/internal/api/auth/dto"
	models "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"
	"github.com/tanavishali52/BE-saleman/internal/utility"

	"github.com/sirupsen/logrus"
)

// ResetCodeTTL là thời hạn của mã đặt lại mật khẩu
const ResetCodeTTL = 10 * time.Minute

// AuthService xử lý đăng ký, đăng nhập, token và luồng quên mật khẩu
type AuthService struct {
	users  UserRepository
	tokens *TokenService
	mailer Mailer
	now    func() time.Time
}

// NewAuthService tạo AuthService
func NewAuthService(users UserRepository, tokens *TokenService, mailer Mailer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		mailer: mailer,
		now:    time.Now,
	}
}

// Tokens trả về TokenService dùng chung (middleware cần để giải mã access token)
func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// getDummyHash trả về chuỗi băm giả để so sánh khi không tìm thấy user (chi phí như nhau ở hai nhánh)
func getDummyHash() string {
	dummyHashOnce.Do(func() {
		dummyHash, _ = utility.HashPassword("dummy-password-for-timing#1")
	})
	return dummyHash
}

func (s *AuthService) log(ctx context.Context) *logrus.Entry {
	return logger.WithModuleContext(ctx, "auth")
}

// Signup đăng ký tài khoản mới. Tài khoản tự đăng ký luôn là admin.
func (s *AuthService) Signup(ctx context.Context, input *authdto.SignupInput) (models.User, error) {
	required := []struct{ field, value string }{
		{"name", input.Name},
		{"phone", input.Phone},
		{"address", input.Address},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return models.User{}, common.NewValidationError(r.field, fmt.Sprintf("Trường %s là bắt buộc", r.field))
		}
	}
	if err := utility.CheckPasswordPolicy(input.Password); err != nil {
		return models.User{}, err
	}

	email := utility.NormalizeEmail(input.Email)
	if email != "" {
		exists, err := s.users.Exists(ctx, models.UserFilter{Email: email})
		if err != nil {
			return models.User{}, err
		}
		if exists {
			return models.User{}, common.NewAlreadyExistsError("email")
		}
	}

	hash, err := utility.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.Create(ctx, models.User{
		Name:     input.Name,
		Phone:    input.Phone,
		Address:  input.Address,
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
		IsActive: true,
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return models.User{}, common.NewAlreadyExistsError("email")
		}
		return models.User{}, err
	}

	s.log(ctx).WithField("user_id", user.ID.Hex()).Info("✅ [AUTH] Đăng ký tài khoản admin mới")
	return user, nil
}

// Login đăng nhập bằng email/mật khẩu, trả về cặp token và ghi đè refresh token cũ
func (s *AuthService) Login(ctx context.Context, input *authdto.LoginInput) (*models.TokenPair, error) {
	user, err := s.users.FindOne(ctx, models.UserFilter{Email: utility.NormalizeEmail(input.Email)})
	if err != nil && !errors.Is(err, common.ErrUserNotFound) {
		return nil, err
	}

	if err != nil {
		// Vẫn chạy bcrypt để thời gian phản hồi không lộ email có tồn tại hay không
		utility.ComparePassword(getDummyHash(), input.Password)
		return nil, common.ErrInvalidCredentials
	}
	if !utility.ComparePassword(user.Password, input.Password) {
		return nil, common.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, common.ErrAccountBlocked
	}

	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, common.WithDetails(common.ErrInternal, err)
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, common.WithDetails(common.ErrInternal, err)
	}

	if _, err := s.users.Update(ctx, user.ID, models.SetRefreshToken(refreshToken)); err != nil {
		return nil, err
	}

	s.log(ctx).WithField("user_id", user.ID.Hex()).Info("🔑 [AUTH] Đăng nhập thành công")
	return &models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh cấp access token mới từ refresh token đang lưu (refresh token giữ nguyên)
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindOne(ctx, models.UserFilter{RefreshToken: refreshToken})
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return "", common.ErrTokenInvalid
		}
		return "", err
	}
	if user.ID != userID {
		return "", common.ErrTokenInvalid
	}
	if !user.IsActive {
		return "", common.ErrAccountBlocked
	}

	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return "", common.WithDetails(common.ErrInternal, err)
	}
	return accessToken, nil
}

// Logout xóa refresh token đang lưu. Trả về false nếu không có phiên nào khớp (vẫn thành công).
func (s *AuthService) Logout(ctx context.Context, refreshToken string) (bool, error) {
	if refreshToken == "" {
		return false, nil
	}
	user, err := s.users.FindOne(ctx, models.UserFilter{RefreshToken: refreshToken})
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if _, err := s.users.Update(ctx, user.ID, models.ClearSession()); err != nil {
		return false, err
	}
	s.log(ctx).WithField("user_id", user.ID.Hex()).Info("👋 [AUTH] Đăng xuất")
	return true, nil
}

// ChangePassword đổi mật khẩu của người dùng đang đăng nhập và buộc đăng nhập lại
func (s *AuthService) ChangePassword(ctx context.Context, principal models.Principal, input *authdto.ChangePasswordInput) error {
	user, err := s.users.FindByID(ctx, principal.ID)
	if err != nil {
		return err
	}
	if !utility.ComparePassword(user.Password, input.OldPassword) {
		return common.ErrInvalidCredentials
	}
	if err := utility.CheckPasswordPolicy(input.NewPassword); err != nil {
		return err
	}

	hash, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	if _, err := s.users.Update(ctx, user.ID, models.SetPassword(hash)); err != nil {
		return err
	}

	s.log(ctx).WithField("user_id", user.ID.Hex()).Info("🔒 [AUTH] Đổi mật khẩu thành công")
	return nil
}

// Profile trả về thông tin người dùng đang đăng nhập
func (s *AuthService) Profile(ctx context.Context, principal models.Principal) (models.User, error) {
	return s.users.FindByID(ctx, principal.ID)
}

// ForgotPassword sinh mã 6 chữ số, lưu bản băm kèm hạn 10 phút và gửi mã qua email
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindOne(ctx, models.UserFilter{Email: utility.NormalizeEmail(email)})
	if err != nil {
		return err
	}
	if s.mailer == nil {
		return common.ErrMailerNotConfigured
	}

	code, err := utility.GenerateNumericCode(utility.ResetCodeLength)
	if err != nil {
		return common.WithDetails(common.ErrInternal, err)
	}

	expiry := s.now().Add(ResetCodeTTL).UnixMilli()
	if _, err := s.users.Update(ctx, user.ID, models.SetResetCode(utility.HashCode(code), expiry)); err != nil {
		return err
	}

	err = s.mailer.SendResetCode(ctx, ResetCodeMessage{
		To:        user.Email,
		Name:      user.Name,
		Code:      code,
		ExpiresIn: int(ResetCodeTTL / time.Minute),
	})
	if err != nil {
		// Không gửi được mail thì mã vừa lưu vô dụng, xóa đi
		if _, rbErr := s.users.Update(ctx, user.ID, models.ClearResetCode()); rbErr != nil {
			s.log(ctx).WithError(rbErr).Error("❌ [AUTH] Không thể xóa mã reset sau khi gửi mail thất bại")
		}
		s.log(ctx).WithError(err).WithField("user_id", user.ID.Hex()).Error("❌ [AUTH] Gửi mã đặt lại mật khẩu thất bại")
		var appErr *common.Error
		if errors.As(err, &appErr) {
			return err
		}
		return common.WithDetails(common.ErrInternal, err)
	}

	s.log(ctx).WithField("user_id", user.ID.Hex()).Info("📧 [AUTH] Đã gửi mã đặt lại mật khẩu")
	return nil
}

// matchResetCode tìm user theo email và kiểm tra mã reset (so sánh băm, thời gian cố định)
func (s *AuthService) matchResetCode(ctx context.Context, email, code string) (models.User, error) {
	email = utility.NormalizeEmail(email)
	if email == "" || code == "" {
		return models.User{}, common.ErrInvalidOrExpiredCode
	}
	user, err := s.users.FindOne(ctx, models.UserFilter{Email: email})
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return models.User{}, common.ErrInvalidOrExpiredCode
		}
		return models.User{}, err
	}

	if user.ResetCode == "" || user.ResetCodeExpiry == 0 {
		return models.User{}, common.ErrInvalidOrExpiredCode
	}
	if s.now().UnixMilli() > user.ResetCodeExpiry {
		return models.User{}, common.ErrInvalidOrExpiredCode
	}
	if !utility.CompareCodeHash(user.ResetCode, code) {
		return models.User{}, common.ErrInvalidOrExpiredCode
	}
	return user, nil
}

// VerifyCode kiểm tra mã đặt lại mật khẩu (không tiêu thụ mã)
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) error {
	_, err := s.matchResetCode(ctx, email, code)
	return err
}

// ResetPassword đặt lại mật khẩu bằng mã; mã chỉ dùng được một lần
func (s *AuthService) ResetPassword(ctx context.Context, input *authdto.ResetPasswordInput) error {
	user, err := s.matchResetCode(ctx, input.Email, input.Code)
	if err != nil {
		return err
	}
	if err := utility.CheckPasswordPolicy(input.NewPassword); err != nil {
		return err
	}

	hash, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	if _, err := s.users.Update(ctx, user.ID, models.SetPassword(hash)); err != nil {
		return err
	}

	s.log(ctx).WithField("user_id", user.ID.Hex()).Info("🔒 [AUTH] Đặt lại mật khẩu thành công")
	return nil
}

// Authenticate giải mã access token và kiểm tra tài khoản còn tồn tại, còn hoạt động.
// Role trả về lấy theo bản ghi hiện tại của người dùng.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (models.Principal, error) {
	claims, err := s.tokens.ParseAccessToken(accessToken)
	if err != nil {
		return models.Principal{}, err
	}

	user, err := s.users.FindByID(ctx, claims.ID)
	if err != nil {
		return models.Principal{}, err
	}
	if !user.IsActive {
		return models.Principal{}, common.ErrAccountBlocked
	}
	if !user.Role.Valid() {
		return models.Principal{}, common.ErrAccessDenied
	}
	return models.Principal{ID: user.ID, Role: user.Role}, nil
}
