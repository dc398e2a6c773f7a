// Package script evaluates JavaScript expressions against a response, for
// pulling a single value out of a body from the command line.
package script

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/artpar/auweb/internal/core"
	"github.com/dop251/goja"
)

// ConsoleHandler is a function that handles console output from JavaScript.
type ConsoleHandler func(level, message string)

// Engine wraps the Goja JavaScript runtime for executing scripts.
type Engine struct {
	mu             sync.Mutex
	runtime        *goja.Runtime
	consoleHandler ConsoleHandler
}

// NewEngine creates a new JavaScript execution engine.
func NewEngine() *Engine {
	e := &Engine{runtime: goja.New()}
	e.runtime.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))
	e.setupConsole()
	return e
}

func (e *Engine) setupConsole() {
	console := e.runtime.NewObject()

	for _, level := range []string{"log", "info", "warn", "error"} {
		level := level
		_ = console.Set(level, func(call goja.FunctionCall) goja.Value {
			parts := make([]string, len(call.Arguments))
			for i, arg := range call.Arguments {
				parts[i] = fmt.Sprintf("%v", arg.Export())
			}
			if e.consoleHandler != nil {
				e.consoleHandler(level, strings.Join(parts, " "))
			}
			return goja.Undefined()
		})
	}

	_ = e.runtime.Set("console", console)
}

// SetConsoleHandler sets the handler for console output.
func (e *Engine) SetConsoleHandler(handler ConsoleHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.consoleHandler = handler
}

// SetGlobal sets a global variable accessible from JavaScript.
func (e *Engine) SetGlobal(name string, value any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runtime.Set(name, value)
}

// SetResponse exposes resp to scripts as the global "response".
func (e *Engine) SetResponse(resp *core.Response) error {
	return e.SetGlobal("response", responseObject(resp))
}

// Execute runs a script and returns its exported result. Cancelling ctx
// interrupts a running script.
func (e *Engine) Execute(ctx context.Context, script string) (any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			e.runtime.Interrupt("context cancelled")
		case <-done:
		}
	}()

	e.runtime.ClearInterrupt()

	program, err := goja.Compile("script", script, true)
	if err != nil {
		return nil, fmt.Errorf("syntax error: %w", err)
	}

	value, err := e.runtime.RunProgram(program)
	if err != nil {
		if exception, ok := err.(*goja.InterruptedError); ok {
			return nil, fmt.Errorf("execution interrupted: %v", exception.Value())
		}
		return nil, fmt.Errorf("runtime error: %w", err)
	}

	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return nil, nil
	}
	return value.Export(), nil
}

// Eval runs expr with resp bound to "response" and renders the result:
// strings as-is, everything else as indented JSON.
func Eval(ctx context.Context, expr string, resp *core.Response) (string, error) {
	engine := NewEngine()
	if err := engine.SetResponse(resp); err != nil {
		return "", fmt.Errorf("binding response: %w", err)
	}

	result, err := engine.Execute(ctx, expr)
	if err != nil {
		return "", err
	}

	switch v := result.(type) {
	case nil:
		return "null", nil
	case string:
		return v, nil
	default:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", v), nil
		}
		return string(out), nil
	}
}

func responseObject(resp *core.Response) map[string]any {
	if resp == nil {
		return map[string]any{}
	}

	headers := make(map[string]any)
	for _, name := range resp.Headers().Keys() {
		headers[strings.ToLower(name)] = resp.Headers().Get(name)
	}

	var parsed any
	if v, err := resp.Body().JSON(); err == nil {
		parsed = v
	}

	return map[string]any{
		"status":     resp.Status().Code(),
		"statusText": resp.Status().Text(),
		"headers":    headers,
		"body":       resp.Body().String(),
		"json":       parsed,
		"timeMs":     resp.Timing().Total.Milliseconds(),
		"header": func(name string) string {
			return resp.Headers().Get(name)
		},
	}
}
