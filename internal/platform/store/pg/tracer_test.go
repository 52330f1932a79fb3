package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

type logLine struct {
	Level   string `json:"level"`
	Slow    bool   `json:"slow"`
	SQL     string `json:"sql"`
	Args    int    `json:"args"`
	Rows    int64  `json:"rows"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// steppedClock advances by step on every reading
func steppedClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func trace(l *SQLLogger, sql string, args []any, tag string, err error) {
	ctx := l.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: sql, Args: args})
	l.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag(tag), Err: err})
}

func lines(t *testing.T, buf *bytes.Buffer) []logLine {
	t.Helper()
	var out []logLine
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var l logLine
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			t.Fatalf("bad log line %q: %v", raw, err)
		}
		out = append(out, l)
	}
	return out
}

func TestNewSQLLogger_NilWhenIdle(t *testing.T) {
	if NewSQLLogger(zerolog.Nop(), false, 0) != nil {
		t.Fatal("expected nil tracer")
	}
	if NewSQLLogger(zerolog.Nop(), false, time.Second) == nil {
		t.Fatal("slow threshold alone must trace")
	}
}

func TestSQLLogger_AllLogsEveryStatement(t *testing.T) {
	var buf bytes.Buffer
	l := NewSQLLogger(zerolog.New(&buf), true, time.Second)
	l.now = steppedClock(time.Millisecond)

	trace(l, "insert into time_entries\n  (project_id, day, start_time)\n  select 1", []any{1, 2, 3}, "INSERT 0 3", nil)

	got := lines(t, &buf)
	if len(got) != 1 {
		t.Fatalf("want 1 line, got %d", len(got))
	}
	l0 := got[0]
	if l0.Level != "info" || l0.Slow || l0.Args != 3 || l0.Rows != 3 || l0.Message != "pg query" {
		t.Fatalf("line = %+v", l0)
	}
	if l0.SQL != "insert into time_entries (project_id, day, start_time) select 1" {
		t.Fatalf("sql not compacted: %q", l0.SQL)
	}
}

func TestSQLLogger_SlowOnlyMode(t *testing.T) {
	var buf bytes.Buffer
	l := NewSQLLogger(zerolog.New(&buf), false, 50*time.Millisecond)

	l.now = steppedClock(time.Millisecond)
	trace(l, "select 1", nil, "SELECT 1", nil)
	if buf.Len() != 0 {
		t.Fatalf("fast query logged: %s", buf.String())
	}

	l.now = steppedClock(100 * time.Millisecond)
	trace(l, "select pg_sleep(1)", nil, "SELECT 1", nil)

	got := lines(t, &buf)
	if len(got) != 1 || got[0].Level != "warn" || !got[0].Slow {
		t.Fatalf("lines = %+v", got)
	}
}

func TestSQLLogger_ErrorsAlwaysWarn(t *testing.T) {
	var buf bytes.Buffer
	l := NewSQLLogger(zerolog.New(&buf), false, time.Hour)
	l.now = steppedClock(time.Millisecond)

	trace(l, "insert into projects", nil, "", errors.New("duplicate key"))

	got := lines(t, &buf)
	if len(got) != 1 || got[0].Level != "warn" || got[0].Error != "duplicate key" {
		t.Fatalf("lines = %+v", got)
	}
}

func TestSQLLogger_EndWithoutStartIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	l := NewSQLLogger(zerolog.New(&buf), true, 0)
	l.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	if buf.Len() != 0 {
		t.Fatalf("unexpected log: %s", buf.String())
	}
}

func TestCompact(t *testing.T) {
	cases := map[string]string{
		"select 1":                        "select 1",
		"  select   1  ":                  "select 1",
		"SELECT\t*\nFROM\r\ttime_entries": "SELECT * FROM time_entries",
		"":                                "",
	}
	for in, want := range cases {
		if got := compact(in); got != want {
			t.Fatalf("compact(%q) = %q, want %q", in, got, want)
		}
	}
}
