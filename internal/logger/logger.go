package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	once   sync.Once
	logger *slog.Logger
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	gray   = "\033[90m"
)

type PrettyHandler struct {
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
	mu    *sync.Mutex
}

func NewPrettyHandler(w io.Writer, level slog.Level) *PrettyHandler {
	return &PrettyHandler{w: w, level: level, mu: &sync.Mutex{}}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	timestamp := r.Time.Format("15:04:05")

	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor = red
		levelText = "ERR"
	case r.Level >= slog.LevelWarn:
		levelColor = yellow
		levelText = "WRN"
	case r.Level >= slog.LevelInfo:
		levelColor = green
		levelText = "INF"
	default:
		levelColor = gray
		levelText = "DBG"
	}

	fmt.Fprintf(h.w, "%s%s%s %s%-3s%s %s",
		gray, timestamp, reset,
		levelColor, levelText, reset,
		r.Message,
	)

	for _, a := range h.attrs {
		fmt.Fprintf(h.w, " %s%s%s=%v", cyan, a.Key, reset, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.w, " %s%s%s=%v", cyan, a.Key, reset, a.Value)
		return true
	})

	fmt.Fprintln(h.w)
	return nil
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return h
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewWithWriter builds a logger writing to w. format "json" selects the JSON
// handler, anything else the coloured pretty handler.
func NewWithWriter(w io.Writer, format string, level slog.Level) *slog.Logger {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = NewPrettyHandler(w, level)
	}
	return slog.New(handler)
}

// Init configures the process-wide logger from LOG_FORMAT and LOG_LEVEL.
// Logs go to stderr so command output on stdout stays clean.
func Init() *slog.Logger {
	once.Do(func() {
		logger = NewWithWriter(os.Stderr, os.Getenv("LOG_FORMAT"), ParseLevel(os.Getenv("LOG_LEVEL")))
		slog.SetDefault(logger)
	})
	return logger
}

func New() *slog.Logger {
	return Init()
}

func Get() *slog.Logger {
	if logger == nil {
		return Init()
	}
	return logger
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}
