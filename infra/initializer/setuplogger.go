package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/itsobank/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelStyle struct {
	icon  string
	color lipgloss.AdaptiveColor
}

var levelStyles = map[log.Level]levelStyle{
	log.ErrorLevel: {"❌", lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}},
	log.WarnLevel:  {"⚠️", lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}},
	log.InfoLevel:  {"ℹ️", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
	log.DebugLevel: {"🐛", lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}},
}

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
	"text":   log.TextFormatter,
}

// styledKeys are the record keys highlighted next to the level styles. Besides
// the handler's own keys they cover the attributes the listing path logs.
var styledKeys = []string{"prefix", "caller", "time", "customerNumber", "accounts", "count"}

func styles() *log.Styles {
	s := log.DefaultStyles()
	for lvl, ls := range levelStyles {
		s.Levels[lvl] = lipgloss.NewStyle().
			SetString(ls.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(ls.color)
	}
	muted := levelStyles[log.DebugLevel].color
	for _, key := range styledKeys {
		s.Keys[key] = lipgloss.NewStyle().Foreground(muted)
		s.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	s.Keys["error"] = lipgloss.NewStyle().Foreground(levelStyles[log.ErrorLevel].color)
	s.Values["error"] = lipgloss.NewStyle().Bold(true)
	return s
}

// newLogger builds the process logger on top of a charmbracelet handler.
func newLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	formatter, ok := formatters[cfg.Format]
	if !ok {
		formatter = log.TextFormatter
	}
	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(styles())
	return slog.New(handler)
}

func setupLogger(cfg *config.Log) *slog.Logger {
	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	return logger
}
