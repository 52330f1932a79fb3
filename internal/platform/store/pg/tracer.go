package pg

import (
	"context"
	"strings"
	"time"

	"reduce/internal/platform/logger"

	"github.com/jackc/pgx/v5"
)

// SQLLogger is a pgx.QueryTracer that writes statements to zerolog
//
// With All set every statement is logged at info. Otherwise only
// statements slower than Slow, or failing ones, are logged at warn.
type SQLLogger struct {
	Log  logger.Logger
	Slow time.Duration
	All  bool

	now func() time.Time
}

var _ pgx.QueryTracer = (*SQLLogger)(nil)

// NewSQLLogger returns nil when there is nothing to log
func NewSQLLogger(log logger.Logger, all bool, slow time.Duration) *SQLLogger {
	if !all && slow <= 0 {
		return nil
	}
	return &SQLLogger{
		Log:  log.With().Str("component", "pg").Logger(),
		Slow: slow,
		All:  all,
	}
}

type queryKey struct{}

type queryStart struct {
	sql  string
	args int
	at   time.Time
}

func (l *SQLLogger) clock() time.Time {
	if l.now != nil {
		return l.now()
	}
	return time.Now()
}

// TraceQueryStart stamps the start time on the query context
func (l *SQLLogger) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryKey{}, queryStart{sql: data.SQL, args: len(data.Args), at: l.clock()})
}

// TraceQueryEnd logs the statement once its result is known
func (l *SQLLogger) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	st, ok := ctx.Value(queryKey{}).(queryStart)
	if !ok {
		return
	}
	elapsed := l.clock().Sub(st.at)
	slow := l.Slow > 0 && elapsed >= l.Slow

	if !slow && data.Err == nil && !l.All {
		return
	}
	evt := l.Log.Info()
	if slow || data.Err != nil {
		evt = l.Log.Warn()
	}

	// args are counted only
	evt.Dur("elapsed", elapsed).
		Bool("slow", slow).
		Str("sql", compact(st.sql)).
		Int("args", st.args).
		Int64("rows", data.CommandTag.RowsAffected()).
		Err(data.Err).
		Msg("pg query")
}

// compact folds runs of whitespace so multi line statements fit one log line
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
