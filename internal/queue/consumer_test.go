package queue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	line := FormatLine(Event{
		Type:       ReservationCreated,
		RecordID:   "r-1",
		Summary:    "Pierre Martin, 4 guests",
		Fields:     map[string]string{"time": "19:30", "date": "2099-01-01"},
		OccurredAt: "2026-10-18T12:00:00Z",
	})
	assert.Equal(t, "[2026-10-18T12:00:00Z] reservation.created | id=r-1 | Pierre Martin, 4 guests | date=\"2099-01-01\" | time=\"19:30\"\n", line)
}

func TestConsumer_HandleMessage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	c := &Consumer{Dir: dir, Logger: log.New("test")}

	require.NoError(t, c.HandleMessage([]byte(`{"type":"contact.received","record_id":"c-1","summary":"Question","occurred_at":"t1"}`)))
	require.NoError(t, c.HandleMessage([]byte(`{"type":"review.posted","record_id":"v-1","summary":"5/5","occurred_at":"t2"}`)))

	data, err := os.ReadFile(filepath.Join(dir, "notifications.log"))
	require.NoError(t, err)
	assert.Equal(t,
		"[t1] contact.received | id=c-1 | Question\n[t2] review.posted | id=v-1 | 5/5\n",
		string(data))
}

func TestConsumer_HandleMessageRejectsBadPayload(t *testing.T) {
	c := &Consumer{Dir: t.TempDir(), Logger: log.New("test")}
	assert.Error(t, c.HandleMessage([]byte("not json")))
	assert.Error(t, c.HandleMessage([]byte(`{"record_id":"x"}`)))
}
