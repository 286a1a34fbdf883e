package notify_test

import (
	"scanrunner/internal/notify"
	"scanrunner/pkg/domain"
	"testing"
	"time"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

func TestMessage_MarshalJSON(t *testing.T) {
	t.Parallel()

	finished := time.Date(2024, 4, 13, 12, 0, 0, 0, time.UTC)
	msg := notify.NewMessage(
		domain.Scan{ID: 5, Status: domain.ScanStatusFail, ResultMessage: "scanner exited abnormally with code 1", FinishedAt: finished},
		domain.ScanTask{ID: 3, Name: "nightly \"full\"", Target: "https://example.com"},
		domain.User{Email: "owner@example.com"},
	)

	payload, err := msg.MarshalJSON()
	require.NoError(t, err)

	fields := map[string]string{}
	require.NoError(t, jx.DecodeBytes(payload).Obj(func(d *jx.Decoder, key string) error {
		raw, err := d.Raw()
		if err != nil {
			return err
		}
		fields[key] = raw.String()

		return nil
	}))

	require.Equal(t, map[string]string{
		"scanId":        "5",
		"taskId":        "3",
		"taskName":      `"nightly \"full\""`,
		"target":        `"https://example.com"`,
		"status":        `"fail"`,
		"resultMessage": `"scanner exited abnormally with code 1"`,
		"finishedAt":    `"2024-04-13T12:00:00Z"`,
	}, fields)

	require.Equal(t, map[string]string{"scanId": "5", "taskId": "3", "status": "fail"}, msg.Attributes())
	require.Contains(t, msg.Subject(), "fail")
}

func TestMessage_MarshalJSONUnfinished(t *testing.T) {
	t.Parallel()

	payload, err := notify.Message{ScanID: 1}.MarshalJSON()
	require.NoError(t, err)
	require.Contains(t, string(payload), `"finishedAt":null`)
	require.NotContains(t, string(payload), "email")
}
