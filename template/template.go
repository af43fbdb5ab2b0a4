// Package template implements the minimal placeholder language used by
// schemly's file-backed artifact templates.
//
// A placeholder is a variable name wrapped in double braces:
//
//	Schema::create('{{table_name}}', ...)
//
// Names may contain letters, digits, underscores and inner spaces, and
// surrounding whitespace inside the braces is ignored ("{{ name }}" and
// "{{name}}" bind the same variable). The language is deliberately
// minimal: no conditionals, no loops, no nesting. Branching and
// iteration belong to the generators, not the template layer.
package template

import "strings"

// Context holds the name -> text bindings for a render pass.
type Context struct {
	vars map[string]string
}

// NewContext returns an empty rendering context.
func NewContext() *Context {
	return &Context{vars: make(map[string]string)}
}

// Set binds a variable, replacing any previous binding.
func (c *Context) Set(name, value string) *Context {
	c.vars[name] = value
	return c
}

// Get returns the bound value and whether the name is bound.
func (c *Context) Get(name string) (string, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Contains reports whether the name is bound.
func (c *Context) Contains(name string) bool {
	_, ok := c.vars[name]
	return ok
}

// Names returns all bound variable names in unspecified order.
func (c *Context) Names() []string {
	names := make([]string, 0, len(c.vars))
	for k := range c.vars {
		names = append(names, k)
	}
	return names
}

// placeholder is a single parsed {{...}} occurrence.
type placeholder struct {
	name   string // trimmed variable name
	start  int    // rune offset of the opening "{{"
	end    int    // rune offset just past the closing "}}"
}

// Render substitutes every placeholder in tmpl with its binding from ctx.
// It never returns partial output: on any error the result is empty.
// Context entries that no placeholder references are ignored.
func Render(tmpl string, ctx *Context) (string, error) {
	phs, err := scan(tmpl)
	if err != nil {
		return "", err
	}

	var missing []string
	seen := make(map[string]struct{})
	for _, ph := range phs {
		if ctx.Contains(ph.name) {
			continue
		}
		if _, dup := seen[ph.name]; dup {
			continue
		}
		seen[ph.name] = struct{}{}
		missing = append(missing, ph.name)
	}
	if len(missing) > 0 {
		return "", NewMissingVariablesError(missing)
	}

	runes := []rune(tmpl)
	var b strings.Builder
	b.Grow(len(tmpl))
	pos := 0
	for _, ph := range phs {
		b.WriteString(string(runes[pos:ph.start]))
		v, _ := ctx.Get(ph.name)
		b.WriteString(v)
		pos = ph.end
	}
	b.WriteString(string(runes[pos:]))
	return b.String(), nil
}

// RenderRequired renders tmpl after first checking that every name in
// required is bound in ctx. All missing required names are reported in a
// single error before any substitution is attempted.
func RenderRequired(tmpl string, ctx *Context, required []string) (string, error) {
	var missing []string
	for _, name := range required {
		if !ctx.Contains(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", NewMissingRequiredError(missing)
	}
	return Render(tmpl, ctx)
}

// scan walks the template left to right and collects placeholders.
// A "{{" opens a placeholder closed by the nearest "}}"; hitting another
// "{{" (or the end of input) first makes the open one unterminated.
func scan(tmpl string) ([]placeholder, error) {
	runes := []rune(tmpl)
	var phs []placeholder

	for i := 0; i < len(runes); i++ {
		if !openAt(runes, i) {
			continue
		}
		start := i
		i += 2
		closed := false
		var body []rune
		for i < len(runes) {
			if closeAt(runes, i) {
				i += 2
				closed = true
				break
			}
			if openAt(runes, i) {
				break
			}
			body = append(body, runes[i])
			i++
		}
		if !closed {
			return nil, NewUnclosedError(start)
		}
		name := strings.TrimSpace(string(body))
		if name == "" {
			return nil, NewEmptyPlaceholderError(start)
		}
		if !validName(name) {
			return nil, NewInvalidNameError(name, start)
		}
		phs = append(phs, placeholder{name: name, start: start, end: i})
		i-- // account for the loop increment
	}
	return phs, nil
}

func openAt(runes []rune, i int) bool {
	return i+1 < len(runes) && runes[i] == '{' && runes[i+1] == '{'
}

func closeAt(runes []rune, i int) bool {
	return i+1 < len(runes) && runes[i] == '}' && runes[i+1] == '}'
}

// validName reports whether the trimmed placeholder body is a legal
// variable name: ASCII letters, digits, underscores and inner spaces.
func validName(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == ' ':
		default:
			return false
		}
	}
	return true
}
