// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Console is the line-oriented logging collaborator behind FnLog and
// FnError. args[0] is the message, the rest are parameters.
type Console interface {
	Log(args ...any)
	Error(args ...any)
}

// paramsKey is the attribute key the slog console stores parameters under.
const paramsKey = "params"

type slogConsole struct {
	logger *slog.Logger
}

// NewConsole returns a Console that writes Log lines at info level and
// Error lines at error level to logger. A nil logger means slog.Default().
func NewConsole(logger *slog.Logger) Console {
	return slogConsole{logger: logger}
}

func (c slogConsole) Log(args ...any) {
	c.write(slog.LevelInfo, args)
}

func (c slogConsole) Error(args ...any) {
	c.write(slog.LevelError, args)
}

func (c slogConsole) write(level slog.Level, args []any) {
	logger := c.logger
	if logger == nil {
		logger = slog.Default()
	}
	msg := ""
	if len(args) > 0 {
		msg = fmt.Sprint(args[0])
		args = args[1:]
	}
	if len(args) == 0 {
		logger.Log(context.Background(), level, msg)
		return
	}
	logger.Log(context.Background(), level, msg, slog.Any(paramsKey, args))
}

var defaultConsole atomic.Pointer[Console]

func init() {
	SetConsole(NewConsole(nil))
}

// SetConsole replaces the Console used by FnLog and FnError and returns
// the previous one. A nil c restores the slog.Default() console.
func SetConsole(c Console) Console {
	if c == nil {
		c = NewConsole(nil)
	}
	prev := defaultConsole.Swap(&c)
	if prev == nil {
		return nil
	}
	return *prev
}

// DefaultConsole returns the Console used by FnLog and FnError.
func DefaultConsole() Console {
	return *defaultConsole.Load()
}

// FnLog returns a thunk that writes message and params to the default
// Console when called. Nothing is written until then. The Console is
// looked up when the thunk runs.
func FnLog(message string, params ...any) func() {
	return logThunk(func(args ...any) { DefaultConsole().Log(args...) }, message, params)
}

// FnError is FnLog for error lines.
func FnError(message string, params ...any) func() {
	return logThunk(func(args ...any) { DefaultConsole().Error(args...) }, message, params)
}

// FnLogTo is FnLog writing to c.
func FnLogTo(c Console, message string, params ...any) func() {
	return logThunk(c.Log, message, params)
}

// FnErrorTo is FnError writing to c.
func FnErrorTo(c Console, message string, params ...any) func() {
	return logThunk(c.Error, message, params)
}

func logThunk(write func(...any), message string, params []any) func() {
	thunk := Functionalize(func(args ...any) Unit {
		write(args...)
		return Unit{}
	}, append([]any{message}, params...)...)
	return func() { thunk() }
}
