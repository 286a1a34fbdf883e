package notify_test

import (
	"context"
	"errors"
	"scanrunner/internal/notify"
	"scanrunner/pkg/domain"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

type publishCall struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakePublisher struct {
	calls []publishCall
	err   error
}

func (f *fakePublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.calls = append(f.calls, publishCall{exchange: exchange, key: key, msg: msg})

	return f.err
}

func TestAMQPSender_Send(t *testing.T) {
	t.Parallel()

	publisher := &fakePublisher{}
	sender := notify.NewAMQPSender(publisher, "", "scan_notifications")

	err := sender.Send(context.Background(), notify.Message{ScanID: 5, TaskID: 3, Status: domain.ScanStatusFail})
	require.NoError(t, err)
	require.Len(t, publisher.calls, 1)

	call := publisher.calls[0]
	require.Empty(t, call.exchange)
	require.Equal(t, "scan_notifications", call.key)
	require.Equal(t, "application/json", call.msg.ContentType)
	require.Equal(t, amqp.Persistent, call.msg.DeliveryMode)
	require.Equal(t, "fail", call.msg.Headers["status"])
	require.Contains(t, string(call.msg.Body), `"status":"fail"`)
}

func TestAMQPSender_PublishError(t *testing.T) {
	t.Parallel()

	boom := errors.New("channel closed")
	sender := notify.NewAMQPSender(&fakePublisher{err: boom}, "scans", "done")

	require.ErrorIs(t, sender.Send(context.Background(), notify.Message{ScanID: 1}), boom)
}
