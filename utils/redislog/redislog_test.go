package redislog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestLogger_PushTrimExpire(t *testing.T) {
	rc, mock := redismock.NewClientMock()
	l := New(rc, "logs:test", 100, time.Hour)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	want, _ := json.Marshal(Entry{Level: "info", Msg: "issued", Time: "2024-03-01T12:00:00Z", Meta: Fields{"event": "Drive"}})
	mock.ExpectLPush("logs:test", want).SetVal(1)
	mock.ExpectLTrim("logs:test", 0, 99).SetVal("OK")
	mock.ExpectExpire("logs:test", time.Hour).SetVal(true)

	l.Info("issued", Fields{"event": "Drive"})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogger_NilSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Warn("x", nil) })

	noRedis := New(nil, "", 0, 0)
	assert.NotPanics(t, func() { noRedis.Errorf("render %s", Fields{"k": "v"}, "failed") })
}
