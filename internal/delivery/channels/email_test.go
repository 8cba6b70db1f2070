package channels

import (
	"context"
	"errors"
	"testing"

	"github.com/tanavishali52/BE-saleman/config"
	authsvc "github.com/tanavishali52/BE-saleman/internal/api/auth/service"
	"github.com/tanavishali52/BE-saleman/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

var _ authsvc.Mailer = (*EmailMailer)(nil)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func TestEmailMailer_NotConfigured(t *testing.T) {
	m := NewEmailMailer(config.SMTPConfig{Host: "smtp.example.com"})

	err := m.SendResetCode(context.Background(), authsvc.ResetCodeMessage{To: "a@b.com", Code: "123456"})
	assert.True(t, errors.Is(err, common.ErrMailerNotConfigured))
}

func TestEmailMailer_Send(t *testing.T) {
	d := &fakeDialer{}
	m := &EmailMailer{from: "noreply@example.com", dialer: d}

	err := m.SendResetCode(context.Background(), authsvc.ResetCodeMessage{To: "a@b.com", Name: "An", Code: "123456", ExpiresIn: 10})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"a@b.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"noreply@example.com"}, d.sent[0].GetHeader("From"))

	d.err = errors.New("connection refused")
	err = m.SendResetCode(context.Background(), authsvc.ResetCodeMessage{To: "a@b.com", Code: "123456"})
	assert.Error(t, err)

	err = m.SendResetCode(context.Background(), authsvc.ResetCodeMessage{Code: "123456"})
	assert.True(t, common.HasCode(err, common.ErrCodeValidationInput))
}
