package notify

import (
	"fmt"
	"scanrunner/pkg/domain"
	"strconv"
	"time"

	"github.com/go-faster/jx"
)

// Message is the notification sent when a scan finishes.
type Message struct {
	ScanID        domain.ScanID
	TaskID        domain.ScanTaskID
	TaskName      string
	Target        string
	Status        domain.ScanStatus
	ResultMessage string
	FinishedAt    time.Time
	// Email is the recipient address of the task owner.
	Email string
}

// NewMessage builds the notification of scan for the owner of task.
func NewMessage(scan domain.Scan, task domain.ScanTask, user domain.User) Message {
	return Message{
		ScanID:        scan.ID,
		TaskID:        task.ID,
		TaskName:      task.Name,
		Target:        task.Target,
		Status:        scan.Status,
		ResultMessage: scan.ResultMessage,
		FinishedAt:    scan.FinishedAt,
		Email:         user.Email,
	}
}

// Subject is a one line summary of the message.
func (m Message) Subject() string {
	name := m.TaskName
	if name == "" {
		name = m.Target
	}

	return fmt.Sprintf("Scan %d of %q finished: %s", m.ScanID, name, m.Status)
}

// Attributes are routing attributes for brokers.
func (m Message) Attributes() map[string]string {
	return map[string]string{
		"scanId": strconv.FormatInt(int64(m.ScanID), 10),
		"taskId": strconv.FormatInt(int64(m.TaskID), 10),
		"status": string(m.Status),
	}
}

// MarshalJSON encodes the message payload. The recipient address is not part of it.
func (m Message) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("scanId")
	e.Int64(int64(m.ScanID))
	e.FieldStart("taskId")
	e.Int64(int64(m.TaskID))
	e.FieldStart("taskName")
	e.Str(m.TaskName)
	e.FieldStart("target")
	e.Str(m.Target)
	e.FieldStart("status")
	e.Str(string(m.Status))
	e.FieldStart("resultMessage")
	e.Str(m.ResultMessage)
	e.FieldStart("finishedAt")
	if m.FinishedAt.IsZero() {
		e.Null()
	} else {
		e.Str(m.FinishedAt.UTC().Format(time.RFC3339))
	}
	e.ObjEnd()

	return e.Bytes(), nil
}
