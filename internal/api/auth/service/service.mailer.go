package authsvc

import "context"

// ResetCodeMessage là nội dung email gửi mã đặt lại mật khẩu
type ResetCodeMessage struct {
	To        string
	Name      string
	Code      string
	ExpiresIn int // phút
}

// Mailer gửi email cho người dùng. Triển khai SMTP nằm ở internal/delivery/channels.
type Mailer interface {
	SendResetCode(ctx context.Context, msg ResetCodeMessage) error
}
