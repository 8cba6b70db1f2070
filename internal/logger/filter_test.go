package logger

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestFilterHook_RedactFields(t *testing.T) {
	hook := NewFilterHook(&LogConfig{RedactFields: "password,refreshToken"})

	entry := logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{
		"password":     "Secret@123",
		"RefreshToken": "abc",
		"email":        "a@b.c",
		"details":      map[string]interface{}{"password": "x", "shop": "s1"},
	})

	assert.NoError(t, hook.Fire(entry))
	assert.Equal(t, redacted, entry.Data["password"])
	assert.Equal(t, redacted, entry.Data["RefreshToken"], "so khớp không phân biệt hoa thường")
	assert.Equal(t, "a@b.c", entry.Data["email"])

	details := entry.Data["details"].(map[string]interface{})
	assert.Equal(t, redacted, details["password"])
	assert.Equal(t, "s1", details["shop"])
}

func TestFilterHook_ModuleFilter(t *testing.T) {
	hook := NewFilterHook(&LogConfig{FilterModules: "order"})

	orderEntry := logrus.NewEntry(logrus.New()).WithField("module", "order")
	authEntry := logrus.NewEntry(logrus.New()).WithField("module", "auth")
	plainEntry := logrus.NewEntry(logrus.New())

	assert.NoError(t, hook.Fire(orderEntry))
	assert.NoError(t, hook.Fire(authEntry))
	assert.NoError(t, hook.Fire(plainEntry))

	assert.Nil(t, orderEntry.Data[filteredKey])
	assert.Equal(t, true, authEntry.Data[filteredKey])
	assert.Nil(t, plainEntry.Data[filteredKey], "entry không có module thì không bị lọc")
}

func TestAsyncHook_WritesAndSkipsFiltered(t *testing.T) {
	var buf bytes.Buffer
	hook := NewAsyncHookWithWriters([]io.Writer{&buf}, 10)

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.AddHook(NewFilterHook(&LogConfig{FilterModules: "order"}))
	log.AddHook(hook)

	log.WithField("module", "order").Info("đặt hàng thành công")
	log.WithField("module", "auth").Info("đăng nhập")

	// Close chờ goroutine ghi hết entries
	assert.NoError(t, hook.Close())

	out := buf.String()
	assert.True(t, strings.Contains(out, "đặt hàng thành công"))
	assert.False(t, strings.Contains(out, "đăng nhập"))
	assert.False(t, strings.Contains(out, filteredKey))
}
