package authdto

// SignupInput đầu vào đăng ký (luôn tạo tài khoản admin).
type SignupInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

// LoginInput đầu vào đăng nhập.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput đầu vào cấp lại access token.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutInput đầu vào đăng xuất.
type LogoutInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ChangePasswordInput đầu vào đổi mật khẩu.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ForgotPasswordInput đầu vào yêu cầu mã đặt lại mật khẩu.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyCodeInput đầu vào kiểm tra mã đặt lại mật khẩu.
type VerifyCodeInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// ResetPasswordInput đầu vào đặt lại mật khẩu.
type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// AccessTokenOutput kết quả cấp lại access token.
type AccessTokenOutput struct {
	AccessToken string `json:"accessToken"`
}
