// Package logging provides the leveled console logger used across the
// toolkit. Each level has a printing form and a record form; the record
// form builds an Entry instead of writing to the console so callers can
// forward log data to their own sinks.
package logging

import (
	"io"
	"os"
	"os/user"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level classifies a log entry by severity.
type Level string

const (
	LevelDebug   Level = "debug"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Entry is an immutable structured log record. It is returned by the
// *Entry methods instead of being printed.
type Entry struct {
	Type         Level     `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
	Message      string    `json:"message"`
	ComputerName string    `json:"computer_name"`
	UserName     string    `json:"user_name"`
	UserDomain   string    `json:"user_domain"`
}

// Options configures a Logger.
type Options struct {
	// Writer receives console output. Defaults to os.Stderr.
	Writer io.Writer
	// DebugEnabled gates all debug-level operations.
	DebugEnabled bool
	// NoColor disables ANSI colors in console output.
	NoColor bool
}

// Logger writes leveled, colorized lines to a console stream. The
// debug-enabled flag is fixed at construction and threaded in from the
// loaded configuration rather than read from process-wide state.
type Logger struct {
	zl           zerolog.Logger
	debugEnabled bool

	computerName string
	userName     string
	userDomain   string

	now func() time.Time
}

// New builds a Logger. Caller identity fields (computer, user, domain)
// are resolved once here and stamped on every entry.
func New(opts Options) *Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    opts.NoColor,
		TimeFormat: "15:04:05",
	}

	host, _ := os.Hostname()
	name, domain := currentUser(host)

	return &Logger{
		zl:           zerolog.New(console).With().Timestamp().Logger(),
		debugEnabled: opts.DebugEnabled,
		computerName: host,
		userName:     name,
		userDomain:   domain,
		now:          time.Now,
	}
}

// Debug prints a debug line. It is a no-op unless debug is enabled.
func (l *Logger) Debug(msg string) {
	if !l.debugEnabled {
		return
	}
	l.write(l.zl.Debug(), msg)
}

// Info prints an informational line.
func (l *Logger) Info(msg string) {
	l.write(l.zl.Info(), msg)
}

// Warning prints a warning line.
func (l *Logger) Warning(msg string) {
	l.write(l.zl.Warn(), msg)
}

// Error prints an error line.
func (l *Logger) Error(msg string) {
	l.write(l.zl.Error(), msg)
}

// DebugEnabled reports whether debug-level operations are active.
func (l *Logger) DebugEnabled() bool {
	return l.debugEnabled
}

// DebugEntry returns a debug record without printing. When debug is
// disabled the call is inert: it returns a zero Entry and false.
func (l *Logger) DebugEntry(msg string) (Entry, bool) {
	if !l.debugEnabled {
		return Entry{}, false
	}
	return l.entry(LevelDebug, msg), true
}

// InfoEntry returns an info record without printing.
func (l *Logger) InfoEntry(msg string) Entry {
	return l.entry(LevelInfo, msg)
}

// WarningEntry returns a warning record without printing.
func (l *Logger) WarningEntry(msg string) Entry {
	return l.entry(LevelWarning, msg)
}

// ErrorEntry returns an error record without printing.
func (l *Logger) ErrorEntry(msg string) Entry {
	return l.entry(LevelError, msg)
}

func (l *Logger) write(ev *zerolog.Event, msg string) {
	ev.Str("computer", l.computerName).
		Str("user", l.userName).
		Msg(msg)
}

func (l *Logger) entry(level Level, msg string) Entry {
	return Entry{
		Type:         level,
		Timestamp:    l.now().UTC(),
		Message:      msg,
		ComputerName: l.computerName,
		UserName:     l.userName,
		UserDomain:   l.userDomain,
	}
}

// currentUser resolves the invoking user name and domain. Windows
// reports DOMAIN\user; elsewhere the host name stands in for the domain.
func currentUser(host string) (name, domain string) {
	domain = host
	if runtime.GOOS == "windows" {
		if d := os.Getenv("USERDOMAIN"); d != "" {
			domain = d
		}
	}

	u, err := user.Current()
	if err != nil {
		return os.Getenv("USER"), domain
	}

	name = u.Username
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		domain = name[:i]
		name = name[i+1:]
	}
	return name, domain
}
