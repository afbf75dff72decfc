package activity_test

import (
	"testing"

	"file-gateway/core/database"
	"file-gateway/feature/activity"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRecorder(t *testing.T, buffer int) (*activity.Recorder, func() []activity.UserActivity) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	rec, err := activity.NewRecorder(db, zap.NewNop(), buffer)
	assert.NoError(t, err)

	rows := func() []activity.UserActivity {
		var out []activity.UserActivity
		assert.NoError(t, db.Order("id").Find(&out).Error)
		return out
	}
	return rec, rows
}

func TestRecorder_PersistsEvents(t *testing.T) {
	rec, rows := newTestRecorder(t, 8)

	rec.Record("alice", activity.ActionUpload, "dir/a.txt", "203.0.113.9")
	rec.Record("bob", activity.ActionDownload, "dir/a.txt", "198.51.100.4")
	rec.Close()

	got := rows()
	assert.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Username)
	assert.Equal(t, activity.ActionUpload, got[0].Action)
	assert.Equal(t, "dir/a.txt", got[0].Details)
	assert.Equal(t, "203.0.113.9", got[0].IPAddress)
	assert.False(t, got[0].OccurredAt.IsZero())
}

func TestRecorder_NeverBlocksWhenFull(t *testing.T) {
	rec, _ := newTestRecorder(t, 1)

	// Far more events than the buffer holds; Record must return regardless.
	for i := 0; i < 100; i++ {
		rec.Record("alice", activity.ActionUpload, "x", "")
	}
	rec.Close()
}

func TestRecorder_CloseIsIdempotent(t *testing.T) {
	rec, _ := newTestRecorder(t, 4)
	rec.Record("alice", activity.ActionLogin, "", "")
	rec.Close()

	assert.NotPanics(t, func() { rec.Close() })
}
