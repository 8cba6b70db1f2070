package channels

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"

	"github.com/tanavishali52/BE-saleman/config"
	authsvc "github.com/tanavishali52/BE-saleman/internal/api/auth/service"
	"github.com/tanavishali52/BE-saleman/internal/common"
	"github.com/tanavishali52/BE-saleman/internal/logger"

	"gopkg.in/gomail.v2"
)

// dialer là phần của gomail.Dialer mà EmailMailer dùng
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailMailer gửi email qua SMTP (gomail). Khi SMTP chưa cấu hình, mọi lần gửi đều trả về
// common.ErrMailerNotConfigured.
type EmailMailer struct {
	from   string
	dialer dialer
}

// NewEmailMailer tạo mailer từ cấu hình SMTP
func NewEmailMailer(cfg config.SMTPConfig) *EmailMailer {
	if !cfg.Configured() {
		logger.WithModule("mailer").Warn("⚠️ [MAILER] SMTP chưa được cấu hình, chức năng quên mật khẩu sẽ bị từ chối")
		return &EmailMailer{}
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Secure
	d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	return &EmailMailer{from: cfg.Sender(), dialer: d}
}

// SendResetCode gửi mã đặt lại mật khẩu
func (m *EmailMailer) SendResetCode(ctx context.Context, msg authsvc.ResetCodeMessage) error {
	if m.dialer == nil {
		return common.ErrMailerNotConfigured
	}
	if msg.To == "" {
		return common.NewValidationError("email", "Tài khoản chưa có email để nhận mã")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body := fmt.Sprintf(`<p>Xin chào %s,</p>
<p>Mã đặt lại mật khẩu của bạn là: <b style="font-size:20px;letter-spacing:4px;">%s</b></p>
<p>Mã có hiệu lực trong %d phút. Nếu bạn không yêu cầu, hãy bỏ qua email này.</p>`,
		html.EscapeString(msg.Name), msg.Code, msg.ExpiresIn)

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", "Mã đặt lại mật khẩu")
	message.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("gửi email tới %s thất bại: %w", msg.To, err)
	}

	logger.WithModule("mailer").WithField("to", msg.To).Info("📧 [MAILER] Đã gửi email mã đặt lại mật khẩu")
	return nil
}
