package template

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	ctx := NewContext().Set("name", "John").Set("age", "30")

	v, ok := ctx.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "John", v)

	_, ok = ctx.Get("missing")
	assert.False(t, ok)

	assert.True(t, ctx.Contains("age"))
	assert.False(t, ctx.Contains("missing"))
	assert.ElementsMatch(t, []string{"name", "age"}, ctx.Names())
}

func TestRender(t *testing.T) {
	t.Run("simple substitution", func(t *testing.T) {
		ctx := NewContext().Set("name", "John").Set("age", "30")
		out, err := Render("Hello {{name}}, you are {{age}}!", ctx)
		require.NoError(t, err)
		assert.Equal(t, "Hello John, you are 30!", out)
	})

	t.Run("whitespace inside braces is trimmed", func(t *testing.T) {
		ctx := NewContext().Set("name", "John")
		out, err := Render("Hello {{ name }}!", ctx)
		require.NoError(t, err)
		assert.Equal(t, "Hello John!", out)
	})

	t.Run("repeated placeholder", func(t *testing.T) {
		ctx := NewContext().Set("x", "a")
		out, err := Render("{{x}}{{x}}{{x}}", ctx)
		require.NoError(t, err)
		assert.Equal(t, "aaa", out)
	})

	t.Run("single braces are literal", func(t *testing.T) {
		ctx := NewContext().Set("age", "30")
		out, err := Render("Hello {name}, you are {{age}}!", ctx)
		require.NoError(t, err)
		assert.Equal(t, "Hello {name}, you are 30!", out)
	})

	t.Run("braces in bound values stay literal", func(t *testing.T) {
		ctx := NewContext().Set("data", "{key: value}")
		out, err := Render("data is {{data}}", ctx)
		require.NoError(t, err)
		assert.Equal(t, "data is {key: value}", out)
		// One pass never introduces new unresolved placeholders.
		assert.NotContains(t, out, "{{")
	})

	t.Run("unused context entries are not an error", func(t *testing.T) {
		ctx := NewContext().Set("name", "John").Set("unused", "x")
		out, err := Render("{{name}}", ctx)
		require.NoError(t, err)
		assert.Equal(t, "John", out)
	})
}

func TestRenderErrors(t *testing.T) {
	t.Run("missing variable", func(t *testing.T) {
		ctx := NewContext().Set("name", "John")
		out, err := Render("{{name}} is {{age}}", ctx)
		assert.Empty(t, out)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingVariables))
		assert.Contains(t, err.Error(), "age")
	})

	t.Run("all missing variables reported in one error", func(t *testing.T) {
		ctx := NewContext().Set("name", "John")
		_, err := Render("{{name}} {{age}} {{city}} {{age}}", ctx)
		require.Error(t, err)
		var terr *Error
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, []string{"age", "city"}, terr.Names)
		assert.Contains(t, err.Error(), "age")
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("unclosed placeholder", func(t *testing.T) {
		_, err := Render("Hello {{name, you are {{age}}!", NewContext().Set("age", "30"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnclosed))
		var terr *Error
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, 6, terr.Offset)
	})

	t.Run("unclosed at end of input", func(t *testing.T) {
		_, err := Render("tail {{name", NewContext())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnclosed))
	})

	t.Run("empty placeholder", func(t *testing.T) {
		_, err := Render("Hello {{}}!", NewContext())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyPlaceholder))
	})

	t.Run("whitespace-only placeholder", func(t *testing.T) {
		_, err := Render("Hello {{   }}!", NewContext())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyPlaceholder))
	})

	t.Run("invalid variable name", func(t *testing.T) {
		_, err := Render("Hello {{na@me}}!", NewContext().Set("na@me", "x"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidName))
		assert.Contains(t, err.Error(), "na@me")
	})

	t.Run("no partial output on error", func(t *testing.T) {
		out, err := Render("{{bound}} then {{missing}}", NewContext().Set("bound", "x"))
		require.Error(t, err)
		assert.Empty(t, out)
	})
}

func TestRenderRequired(t *testing.T) {
	t.Run("all present", func(t *testing.T) {
		ctx := NewContext().Set("name", "John").Set("age", "30")
		out, err := RenderRequired("{{name}} {{age}}", ctx, []string{"name", "age"})
		require.NoError(t, err)
		assert.Equal(t, "John 30", out)
	})

	t.Run("missing required reported before substitution", func(t *testing.T) {
		ctx := NewContext().Set("name", "John")
		_, err := RenderRequired("{{name}}", ctx, []string{"name", "age", "city"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingVariables))
		var terr *Error
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, []string{"age", "city"}, terr.Names)
		assert.Contains(t, err.Error(), "required")
	})
}

func TestRenderIdempotent(t *testing.T) {
	// Rendering a template once yields text whose unresolved {{...}}
	// tokens, if any, were already present in the input.
	ctx := NewContext().Set("a", "plain").Set("b", "text")
	tmpl := "x {{a}} y {{b}} z"
	out, err := Render(tmpl, ctx)
	require.NoError(t, err)
	assert.False(t, strings.Contains(out, "{{"))
}
