package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	authmodels "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	"github.com/tanavishali52/BE-saleman/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCleaner struct{ err error }

func (f failingCleaner) ClearExpiredResetCodes(context.Context, int64) (int64, error) {
	return 0, f.err
}

type panickingCleaner struct{}

func (panickingCleaner) ClearExpiredResetCodes(context.Context, int64) (int64, error) {
	panic("boom")
}

func TestResetCodeSweeper_SweepOnce(t *testing.T) {
	ctx := context.Background()
	users := storetest.NewUsers()
	now := time.Now()

	expired, err := users.Create(ctx, authmodels.User{Email: "a@example.com", ResetCode: "111111", ResetCodeExpiry: now.Add(-time.Minute).UnixMilli()})
	require.NoError(t, err)
	fresh, err := users.Create(ctx, authmodels.User{Email: "b@example.com", ResetCode: "222222", ResetCodeExpiry: now.Add(time.Minute).UnixMilli()})
	require.NoError(t, err)

	w := NewResetCodeSweeper(users, time.Minute)
	w.now = func() time.Time { return now }

	cleared, err := w.SweepOnce(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cleared)

	got, err := users.FindByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ResetCode)

	got, err = users.FindByID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, "222222", got.ResetCode)
}

func TestResetCodeSweeper_ErrorsAndPanics(t *testing.T) {
	boom := errors.New("db down")
	_, err := NewResetCodeSweeper(failingCleaner{err: boom}, time.Minute).SweepOnce(context.Background())
	assert.ErrorIs(t, err, boom)

	assert.NotPanics(t, func() {
		cleared, err := NewResetCodeSweeper(panickingCleaner{}, time.Minute).SweepOnce(context.Background())
		assert.NoError(t, err)
		assert.Zero(t, cleared)
	})
}

func TestResetCodeSweeper_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewResetCodeSweeper(storetest.NewUsers(), 0)
	assert.Equal(t, 5*time.Minute, w.interval)

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker không dừng sau khi hủy context")
	}
}
