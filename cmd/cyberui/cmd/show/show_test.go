package show

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cyberui/internal/cmd/application"
	"github.com/agentstation/cyberui/internal/cmd/style"
	"github.com/agentstation/cyberui/pkg/catalogs"
	"github.com/agentstation/cyberui/pkg/errors"
)

func newApp(t *testing.T, format string) *application.Mock {
	t.Helper()
	cat, err := catalogs.NewEmbedded()
	require.NoError(t, err)
	return &application.Mock{
		CatalogFunc:      func() (catalogs.Reader, error) { return cat, nil },
		OutputFormatFunc: func() string { return format },
	}
}

func execute(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShowTable(t *testing.T) {
	out, err := execute(t, newApp(t, "table"), "card")
	require.NoError(t, err)

	assert.Contains(t, out, "Card")
	assert.Contains(t, out, "Usable")
	assert.Contains(t, out, "Props")
	assert.Contains(t, out, "Example")
	assert.Contains(t, out, "(button)")
	assert.Contains(t, out, "(input)")
}

func TestShowJSONIncludesNeighbors(t *testing.T) {
	out, err := execute(t, newApp(t, "json"), "button")
	require.NoError(t, err)

	var d Detail
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "button", d.Component.ID)
	assert.Nil(t, d.Prev)
	require.NotNil(t, d.Next)
	assert.Equal(t, "card", d.Next.ID)
}

func TestShowLastHasNoNext(t *testing.T) {
	out, err := execute(t, newApp(t, "json"), "cyber-grid")
	require.NoError(t, err)

	var d Detail
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	require.NotNil(t, d.Prev)
	assert.Equal(t, "scan-line", d.Prev.ID)
	assert.Nil(t, d.Next)
}

func TestShowUnknownID(t *testing.T) {
	_, err := execute(t, newApp(t, "table"), "hologram")
	require.Error(t, err)

	var nf *errors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "hologram", nf.ID)
}

func TestShowCodeRaw(t *testing.T) {
	cat, err := catalogs.NewEmbedded()
	require.NoError(t, err)
	button, _ := cat.Component("button")

	out, err := execute(t, newApp(t, "table"), "button", "--code", "example")
	require.NoError(t, err)
	assert.Equal(t, button.Code+"\n", out)
}

func TestShowCodeInvalidSelector(t *testing.T) {
	_, err := execute(t, newApp(t, "table"), "button", "--code", "tests")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSnippet(t *testing.T) {
	c := catalogs.Component{ID: "x", Code: "<X />", Usage: "<X big />"}

	s, err := Snippet(c, "EXAMPLE")
	require.NoError(t, err)
	assert.Equal(t, "<X />", s)

	s, err = Snippet(c, "usage")
	require.NoError(t, err)
	assert.Equal(t, "<X big />", s)

	_, err = Snippet(c, "full")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no full snippet")
}

func TestRenderWithoutOptionalSections(t *testing.T) {
	c := catalogs.Component{
		ID:          "x",
		Name:        "Xeno",
		Category:    catalogs.CategoryExperimental,
		Description: "Minimal component",
		Code:        "<Xeno />",
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, style.New(true), 80, c, nil, nil))

	out := buf.String()
	assert.Contains(t, out, "Xeno")
	assert.Contains(t, out, "<Xeno />")
	assert.False(t, strings.Contains(out, "Variants"))
	assert.False(t, strings.Contains(out, "Props"))
	assert.False(t, strings.Contains(out, "→"))
}
