// Package interpolate expands {{name}} placeholders in request text.
package interpolate

import (
	"fmt"
	"maps"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BuiltinFunc generates a value each time it is referenced.
type BuiltinFunc func() string

// Engine expands variables. Builtins start with "$" and are evaluated on
// every reference.
type Engine struct {
	variables map[string]string
	builtins  map[string]BuiltinFunc
}

// variablePattern matches {{variable}} or {{ variable }}.
var variablePattern = regexp.MustCompile(`\{\{\s*([a-zA-Z_$][a-zA-Z0-9_\-$.]*)\s*\}\}`)

// NewEngine creates an engine over a copy of vars.
func NewEngine(vars map[string]string) *Engine {
	e := &Engine{
		variables: maps.Clone(vars),
		builtins: map[string]BuiltinFunc{
			"$uuid":         func() string { return uuid.New().String() },
			"$timestamp":    func() string { return fmt.Sprintf("%d", time.Now().Unix()) },
			"$isoTimestamp": func() string { return time.Now().Format(time.RFC3339) },
			"$date":         func() string { return time.Now().Format("2006-01-02") },
		},
	}
	if e.variables == nil {
		e.variables = make(map[string]string)
	}
	return e
}

// RegisterBuiltin adds or replaces a builtin. name must start with "$".
func (e *Engine) RegisterBuiltin(name string, fn BuiltinFunc) {
	e.builtins[name] = fn
}

// Expand replaces every placeholder in input. Placeholders naming an
// unknown variable are left as written and their names returned, once each,
// in order of first appearance.
func (e *Engine) Expand(input string) (string, []string) {
	if !strings.Contains(input, "{{") {
		return input, nil
	}

	var undefined []string
	seen := make(map[string]bool)

	result := variablePattern.ReplaceAllStringFunc(input, func(match string) string {
		name := variablePattern.FindStringSubmatch(match)[1]

		if fn, ok := e.builtins[name]; ok {
			return fn()
		}
		if value, ok := e.variables[name]; ok {
			return value
		}

		if !seen[name] {
			seen[name] = true
			undefined = append(undefined, name)
		}
		return match
	})

	return result, undefined
}

// Names returns the variable names referenced in input, once each.
func Names(input string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range variablePattern.FindAllStringSubmatch(input, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
