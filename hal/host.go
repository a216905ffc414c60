package hal

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type hostHAL struct {
	cfg    Config
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL with the default display geometry.
func New() HAL {
	return newHost(Config{}, os.Stderr)
}

// NewWithConfig returns a host HAL with the given display geometry.
func NewWithConfig(cfg Config) HAL {
	return newHost(cfg, os.Stderr)
}

func newHost(cfg Config, logOut io.Writer) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		cfg:    cfg,
		logger: newHostLogger(logOut),
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// hostLogger turns "topic: detail" lines into structured zerolog events.
type hostLogger struct {
	mu sync.Mutex
	zl zerolog.Logger
}

func newHostLogger(w io.Writer) *hostLogger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !isTerminal(w)}
	return &hostLogger{zl: zerolog.New(out).With().Timestamp().Logger()}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	topic, msg := splitTopic(s)
	ev := l.zl.Info()
	if topic != "" {
		ev = ev.Str("topic", topic)
	}
	ev.Msg(msg)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}

func splitTopic(s string) (topic, msg string) {
	s = strings.TrimRight(s, "\r\n")
	i := strings.Index(s, ": ")
	if i <= 0 || strings.ContainsAny(s[:i], " \t") {
		return "", s
	}
	return s[:i], s[i+2:]
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice != 0
}
