package console

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-publish/internal/logging"
	"github.com/goliatone/go-publish/pkg/interfaces"
)

// Level orders entries by severity.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelLabels = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

var levelNames = map[string]Level{
	"trace":   LevelTrace,
	"debug":   LevelDebug,
	"":        LevelInfo,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
	"fatal":   LevelFatal,
}

func (l Level) String() string {
	if int(l) < len(levelLabels) {
		return levelLabels[l]
	}
	return levelLabels[LevelInfo]
}

// ParseLevel resolves a configured level name. Unknown names report false
// and fall back to LevelInfo.
func ParseLevel(name string) (Level, bool) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LevelInfo, false
	}
	return level, true
}

// Options configures NewProvider. Zero values select stderr, the wall clock
// and LevelDebug.
type Options struct {
	Writer   io.Writer
	TimeFunc func() time.Time
	MinLevel *Level
}

// sink serialises lines from every logger handed out by one provider.
type sink struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
	min Level
}

func (s *sink) write(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.out.Write(line)
}

type provider struct {
	sink *sink
}

// NewProvider returns a provider whose loggers print one line per entry:
//
//	<RFC3339 UTC time> <LEVEL> <event> key=value ...
//
// Keys are sorted. Values holding spaces, control characters or '=' are
// quoted.
func NewProvider(opts Options) interfaces.LoggerProvider {
	s := &sink{out: opts.Writer, now: opts.TimeFunc, min: LevelDebug}
	if s.out == nil {
		s.out = os.Stderr
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.MinLevel != nil {
		s.min = *opts.MinLevel
	}
	return &provider{sink: s}
}

func (p *provider) GetLogger(name string) interfaces.Logger {
	return &lineLogger{sink: p.sink, fields: map[string]any{"logger": name}}
}

type lineLogger struct {
	sink   *sink
	fields map[string]any
	ctx    context.Context
}

var (
	_ interfaces.Logger       = (*lineLogger)(nil)
	_ interfaces.FieldsLogger = (*lineLogger)(nil)
)

func (l *lineLogger) Trace(msg string, args ...any) { l.emit(LevelTrace, msg, args) }
func (l *lineLogger) Debug(msg string, args ...any) { l.emit(LevelDebug, msg, args) }
func (l *lineLogger) Info(msg string, args ...any)  { l.emit(LevelInfo, msg, args) }
func (l *lineLogger) Warn(msg string, args ...any)  { l.emit(LevelWarn, msg, args) }
func (l *lineLogger) Error(msg string, args ...any) { l.emit(LevelError, msg, args) }
func (l *lineLogger) Fatal(msg string, args ...any) { l.emit(LevelFatal, msg, args) }

func (l *lineLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	merged := maps.Clone(l.fields)
	if merged == nil {
		merged = make(map[string]any, len(fields))
	}
	maps.Copy(merged, fields)
	return &lineLogger{sink: l.sink, fields: merged, ctx: l.ctx}
}

func (l *lineLogger) WithContext(ctx context.Context) interfaces.Logger {
	return &lineLogger{sink: l.sink, fields: l.fields, ctx: ctx}
}

// emit merges logger fields, context fields and call arguments, later
// sources winning on key clashes.
func (l *lineLogger) emit(level Level, msg string, args []any) {
	if l.sink == nil || level < l.sink.min {
		return
	}

	fields := make(map[string]any, len(l.fields)+len(args)/2)
	maps.Copy(fields, l.fields)
	maps.Copy(fields, logging.ContextFields(l.ctx))
	collectPairs(fields, args)

	var line bytes.Buffer
	line.WriteString(l.sink.now().UTC().Format(time.RFC3339Nano))
	line.WriteByte(' ')
	line.WriteString(level.String())
	line.WriteByte(' ')
	line.WriteString(msg)
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		line.WriteByte(' ')
		line.WriteString(key)
		line.WriteByte('=')
		line.WriteString(renderValue(fields[key]))
	}
	line.WriteByte('\n')

	l.sink.write(line.Bytes())
}

// collectPairs reads args as alternating keys and values. A value without a
// usable string key, or a trailing key without a value, is stored under
// arg<N> with N its position in args.
func collectPairs(dst map[string]any, args []any) {
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			dst["arg"+strconv.Itoa(i)] = args[i]
			return
		}
		if key, ok := args[i].(string); ok && key != "" {
			dst[key] = args[i+1]
			continue
		}
		dst["arg"+strconv.Itoa(i+1)] = args[i+1]
	}
}

func renderValue(value any) string {
	var text string
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		text = v
	case time.Time:
		text = v.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if v == nil {
			return "null"
		}
		text = v.UTC().Format(time.RFC3339Nano)
	case error:
		text = v.Error()
	case fmt.Stringer:
		text = v.String()
	default:
		text = fmt.Sprint(v)
	}
	if text == "" {
		return `""`
	}
	if strings.ContainsFunc(text, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(text)
	}
	return text
}
