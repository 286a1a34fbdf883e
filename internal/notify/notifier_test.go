package notify_test

import (
	"context"
	"errors"
	"scanrunner/internal/notify"
	mocknotify "scanrunner/internal/notify/mock"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/serrors"
	mockstorage "scanrunner/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var channels = []notify.ChannelConfig{
	{ID: notify.ChannelNone},
	{ID: notify.ChannelMail},
}

func newTestNotifier(t *testing.T, preference int) (*notify.Notifier, *mocknotify.MockSender, domain.Scan) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	mail := mocknotify.NewMockSender(ctrl)

	task := domain.ScanTask{ID: 3, UserID: 8, Name: "nightly", Target: "https://example.com"}
	user := domain.User{ID: 8, Email: "owner@example.com", Notification: preference}
	st.EXPECT().ScanTaskByID(gomock.Any(), task.ID).Return(&task, nil)
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(&user, nil)

	registry := notify.NewRegistry(channels, map[string]notify.Sender{notify.ChannelMail: mail})

	return notify.New(st, registry), mail, domain.Scan{ID: 5, TaskID: task.ID, Status: domain.ScanStatusDone}
}

func TestNotifier_Notify(t *testing.T) {
	t.Parallel()

	t.Run("none sends nothing", func(t *testing.T) {
		t.Parallel()

		n, _, scan := newTestNotifier(t, 0)
		require.NoError(t, n.Notify(context.Background(), scan))
	})

	t.Run("out of range preference sends nothing", func(t *testing.T) {
		t.Parallel()

		n, _, scan := newTestNotifier(t, 10000)
		require.ErrorIs(t, n.Notify(context.Background(), scan), serrors.ErrNotification)
	})

	t.Run("mail sends exactly once", func(t *testing.T) {
		t.Parallel()

		n, mail, scan := newTestNotifier(t, 1)
		mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg notify.Message) error {
				require.Equal(t, scan.ID, msg.ScanID)
				require.Equal(t, "owner@example.com", msg.Email)
				require.Equal(t, domain.ScanStatusDone, msg.Status)

				return nil
			},
		).Times(1)

		require.NoError(t, n.Notify(context.Background(), scan))
	})

	t.Run("send failure", func(t *testing.T) {
		t.Parallel()

		n, mail, scan := newTestNotifier(t, 1)
		boom := errors.New("connection refused")
		mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(boom)

		err := n.Notify(context.Background(), scan)
		require.ErrorIs(t, err, serrors.ErrNotification)
		require.ErrorIs(t, err, boom)
	})
}

func TestNotifier_MissingOwner(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	st.EXPECT().ScanTaskByID(gomock.Any(), domain.ScanTaskID(3)).Return(&domain.ScanTask{ID: 3, UserID: 8}, nil)
	st.EXPECT().UserByID(gomock.Any(), domain.UserID(8)).Return(nil, nil)

	n := notify.New(st, notify.NewRegistry(channels, nil))
	err := n.Notify(context.Background(), domain.Scan{ID: 1, TaskID: 3})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
