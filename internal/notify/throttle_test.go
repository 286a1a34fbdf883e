package notify_test

import (
	"context"
	"scanrunner/internal/notify"
	mocknotify "scanrunner/internal/notify/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

func TestThrottle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sender := mocknotify.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	throttled := notify.Throttle(sender, rate.NewLimiter(rate.Every(time.Hour), 1))
	require.NoError(t, throttled.Send(context.Background(), notify.Message{ScanID: 1}))

	// the burst is spent, the next send cannot get a token before its deadline
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, throttled.Send(ctx, notify.Message{ScanID: 2}))
}

func TestThrottle_NilLimiter(t *testing.T) {
	t.Parallel()

	sender := mocknotify.NewMockSender(gomock.NewController(t))
	require.Equal(t, notify.Sender(sender), notify.Throttle(sender, nil))
}
