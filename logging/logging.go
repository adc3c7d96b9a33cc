package logging

import (
	"fmt"

	"github.com/tarmac-project/nullpay"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const capabilityName = "logging"

// Level orders log entries by severity.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// hostFunction maps a level to the host logging function that receives it.
var hostFunction = map[Level]string{
	LevelTrace: "Trace",
	LevelDebug: "Debug",
	LevelInfo:  "Info",
	LevelWarn:  "Warn",
	LevelError: "Error",
}

// Client exposes convenience helpers for sending log entries to the host runtime.
type Client interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Debug(format string, args ...any)
	Trace(format string, args ...any)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig nullpay.RuntimeConfig

	// HostCall overrides the waPC host function used for logging operations.
	HostCall func(string, string, string, []byte) ([]byte, error)

	// Level drops entries below it without calling the host. The zero value
	// forwards everything.
	Level Level

	// Prefix is prepended to every message, e.g. "[nullpay] ".
	Prefix string
}

// client implements Client using the configured host call entrypoint.
type client struct {
	runtime  nullpay.RuntimeConfig
	hostCall func(string, string, string, []byte) ([]byte, error)
	level    Level
	prefix   string
}

// New creates a Client that emits logs through the configured host capability.
func New(cfg Config) (Client, error) {
	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &client{
		runtime:  cfg.SDKConfig.WithDefaults(),
		hostCall: hostCall,
		level:    cfg.Level,
		prefix:   cfg.Prefix,
	}, nil
}

func (c *client) Info(format string, args ...any)  { c.log(LevelInfo, format, args) }
func (c *client) Warn(format string, args ...any)  { c.log(LevelWarn, format, args) }
func (c *client) Error(format string, args ...any) { c.log(LevelError, format, args) }
func (c *client) Debug(format string, args ...any) { c.log(LevelDebug, format, args) }
func (c *client) Trace(format string, args ...any) { c.log(LevelTrace, format, args) }

// log is best-effort: host failures are ignored so logging never changes
// the outcome of an operation.
func (c *client) log(level Level, format string, args []any) {
	if level < c.level {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	_, _ = c.hostCall(c.runtime.Namespace, capabilityName, hostFunction[level], []byte(c.prefix+msg))
}

// Nop returns a Client that discards every entry.
func Nop() Client { return nop{} }

type nop struct{}

func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}
func (nop) Debug(string, ...any) {}
func (nop) Trace(string, ...any) {}
