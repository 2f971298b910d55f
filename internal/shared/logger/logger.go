package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/vpndash/vpndash/internal/shared/config"
)

var (
	defaultLogger *slog.Logger
	levelVar      = new(slog.LevelVar)
	mu            sync.RWMutex
)

// Options carries the settings Init needs beyond the logger section of the config.
type Options struct {
	// Debug enables source locations on every level.
	Debug bool
}

// Init builds the process-wide logger from configuration and installs it as slog's default.
func Init(cfg *config.LoggerConfig, opts Options) error {
	levelVar.Set(ParseLevel(cfg.Level))

	writer, err := openWriter(cfg.OutputPath)
	if err != nil {
		return err
	}

	showSource := []slog.Level{slog.LevelWarn, slog.LevelError}
	if opts.Debug {
		showSource = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: levelVar})
	} else {
		base = newTintHandler(writer, levelVar, !isTerminal(writer))
	}

	l := slog.New(NewConditionalSourceHandler(base, showSource...))

	mu.Lock()
	defaultLogger = l
	mu.Unlock()
	slog.SetDefault(l)

	return nil
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openWriter(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

func newTintHandler(w io.Writer, level slog.Leveler, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SetLevel changes the level of the logger installed by Init at runtime.
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// Get returns the process logger, lazily creating a console logger when Init was never called.
func Get() *slog.Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		base := newTintHandler(os.Stdout, slog.LevelInfo, !term.IsTerminal(int(os.Stdout.Fd())))
		defaultLogger = slog.New(NewConditionalSourceHandler(base, slog.LevelWarn, slog.LevelError))
	}
	return defaultLogger
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}

// Sync is kept for call sites that defer a flush; slog writes synchronously.
func Sync() error {
	return nil
}

func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}
