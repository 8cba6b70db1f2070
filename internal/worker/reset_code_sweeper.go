// Package worker chứa các background worker chạy định kỳ.
package worker

import (
	"context"
	"time"

	"github.com/tanavishali52/BE-saleman/internal/logger"

	"github.com/sirupsen/logrus"
)

// ResetCodeCleaner xóa các mã đặt lại mật khẩu đã hết hạn
type ResetCodeCleaner interface {
	ClearExpiredResetCodes(ctx context.Context, now int64) (int64, error)
}

// ResetCodeSweeper định kỳ dọn mã reset hết hạn để mã cũ không nằm lại trong DB
type ResetCodeSweeper struct {
	users    ResetCodeCleaner
	interval time.Duration
	now      func() time.Time
}

// NewResetCodeSweeper tạo mới ResetCodeSweeper (interval tối thiểu 30 giây)
func NewResetCodeSweeper(users ResetCodeCleaner, interval time.Duration) *ResetCodeSweeper {
	if interval < 30*time.Second {
		interval = 5 * time.Minute
	}
	return &ResetCodeSweeper{users: users, interval: interval, now: time.Now}
}

// SweepOnce chạy một lần dọn dẹp, trả về số tài khoản được dọn
func (w *ResetCodeSweeper) SweepOnce(ctx context.Context) (cleared int64, err error) {
	log := logger.WithModule("worker")
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("🧹 [RESET_SWEEP] Panic khi dọn mã reset, sẽ tiếp tục ở lần chạy tiếp theo")
			cleared, err = 0, nil
		}
	}()

	cleared, err = w.users.ClearExpiredResetCodes(ctx, w.now().UnixMilli())
	if err != nil {
		log.WithError(err).Error("🧹 [RESET_SWEEP] Không thể dọn mã reset hết hạn")
		return 0, err
	}
	if cleared > 0 {
		log.WithField("cleared", cleared).Info("🧹 [RESET_SWEEP] Đã dọn mã reset hết hạn")
	}
	return cleared, nil
}

// Start chạy worker cho tới khi ctx bị hủy
func (w *ResetCodeSweeper) Start(ctx context.Context) {
	log := logger.WithModule("worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(logrus.Fields{"interval": w.interval.String()}).Info("🧹 [RESET_SWEEP] Starting Reset Code Sweeper...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🧹 [RESET_SWEEP] Reset Code Sweeper stopped")
			return
		case <-ticker.C:
			_, _ = w.SweepOnce(ctx)
		}
	}
}
