package redislog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fields is the structured part of an entry.
type Fields map[string]string

// Entry is a structured audit record saved into Redis as JSON.
type Entry struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
	Time  string `json:"time"`
	Meta  Fields `json:"meta,omitempty"`
}

// Logger pushes entries to a Redis LIST and trims it to a max length.
// Without a Redis client it mirrors entries to the standard logger instead,
// so issuing and rejecting submissions always leaves a trace.
type Logger struct {
	rdb       *redis.Client
	key       string        // list key, e.g. "logs:certdrive"
	max       int64         // keep last N entries
	retention time.Duration // optional expire for the list key
	now       func() time.Time
}

// New creates the audit logger. rdb may be nil.
func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention, now: time.Now}
}

// log writes LPUSH, then LTRIM, then EXPIRE. Redis errors are dropped: the
// audit trail must never fail a certificate request.
func (l *Logger) log(level, msg string, meta Fields) {
	if l == nil {
		return
	}
	en := Entry{
		Level: level,
		Msg:   msg,
		Time:  l.now().UTC().Format(time.RFC3339),
		Meta:  meta,
	}
	b, _ := json.Marshal(en)
	if l.rdb == nil {
		log.Printf("[audit] %s", b)
		return
	}
	ctx := context.Background()
	_ = l.rdb.LPush(ctx, l.key, b).Err()
	_ = l.rdb.LTrim(ctx, l.key, 0, l.max-1).Err()
	if l.retention > 0 {
		_ = l.rdb.Expire(ctx, l.key, l.retention).Err()
	}
}

func (l *Logger) Info(msg string, meta Fields)  { l.log("info", msg, meta) }
func (l *Logger) Warn(msg string, meta Fields)  { l.log("warn", msg, meta) }
func (l *Logger) Error(msg string, meta Fields) { l.log("error", msg, meta) }

// Formatted variants
func (l *Logger) Infof(format string, meta Fields, args ...any) {
	l.Info(fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Warnf(format string, meta Fields, args ...any) {
	l.Warn(fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Errorf(format string, meta Fields, args ...any) {
	l.Error(fmt.Sprintf(format, args...), meta)
}
