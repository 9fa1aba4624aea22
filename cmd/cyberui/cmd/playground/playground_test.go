package playground

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cyberui/internal/cmd/application"
	"github.com/agentstation/cyberui/pkg/catalogs"
	"github.com/agentstation/cyberui/pkg/constants"
	"github.com/agentstation/cyberui/pkg/errors"
	"github.com/agentstation/cyberui/pkg/playground"
)

func embedded(t *testing.T) *catalogs.Catalog {
	t.Helper()
	cat, err := catalogs.NewEmbedded()
	require.NoError(t, err)
	return cat
}

func newApp(t *testing.T, format string) *application.Mock {
	t.Helper()
	cat := embedded(t)
	return &application.Mock{
		CatalogFunc:      func() (catalogs.Reader, error) { return cat, nil },
		OutputFormatFunc: func() string { return format },
	}
}

func execute(t *testing.T, app application.Application, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestResolve(t *testing.T) {
	cat := embedded(t)

	tests := []struct {
		name string
		args []string
		want []playground.Selected
	}{
		{"none", nil, nil},
		{"ids keep order", []string{"card", "button"}, []playground.Selected{
			{ID: "card", Name: "Card"},
			{ID: "button", Name: "Button"},
		}},
		{"duplicates kept", []string{"badge", "badge"}, []playground.Selected{
			{ID: "badge", Name: "Badge"},
			{ID: "badge", Name: "Badge"},
		}},
		{"unknown id uses id as name", []string{"holo-deck"}, []playground.Selected{
			{ID: "holo-deck", Name: "holo-deck"},
		}},
		{"glob in catalog order", []string{"*-*"}, []playground.Selected{
			{ID: "glitch-text", Name: "Glitch Text"},
			{ID: "scan-line", Name: "Scan Line"},
			{ID: "cyber-grid", Name: "Cyber Grid"},
		}},
		{"brace glob", []string{"{tabs,modal}"}, []playground.Selected{
			{ID: "modal", Name: "Modal"},
			{ID: "tabs", Name: "Tabs"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(cat, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveGlobWithoutMatch(t *testing.T) {
	_, err := Resolve(embedded(t), []string{"holo-*"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestResolveInvalidGlob(t *testing.T) {
	_, err := Resolve(embedded(t), []string{"[abc"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestPlaygroundEmptySelection(t *testing.T) {
	out, _, err := execute(t, newApp(t, "table"))
	require.NoError(t, err)
	assert.Equal(t, constants.EmptyPlaygroundCode+"\n", out)
}

func TestPlaygroundPrintsCode(t *testing.T) {
	out, _, err := execute(t, newApp(t, "table"), "button", "glitch-text")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out,
		"import Button from '@/components/ui/Button'\nimport GlitchText from '@/components/ui/GlitchText'\n\nexport default function MyPage() {"), out)
	assert.True(t, strings.HasSuffix(out, "    </div>\n  )\n}\n"), out)
}

func TestPlaygroundJSON(t *testing.T) {
	out, _, err := execute(t, newApp(t, "json"), "scan-*")
	require.NoError(t, err)

	var r Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, []playground.Selected{{ID: "scan-line", Name: "Scan Line"}}, r.Selected)
	assert.Contains(t, r.Code, "import ScanLine from '@/components/ui/ScanLine'")
}

func TestPlaygroundJSONEmpty(t *testing.T) {
	out, _, err := execute(t, newApp(t, "json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"selected":[],"code":"// Select components to generate code"}`, out)
}

func TestPlaygroundCopy(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	out, stderr, err := execute(t, newApp(t, "table"), "toggle", "--copy")
	require.NoError(t, err)
	assert.Equal(t, copied+"\n", out)
	assert.Contains(t, stderr, "Copied 1 component(s)")
}

func TestPlaygroundCopyFailure(t *testing.T) {
	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard utility") }
	t.Cleanup(func() { copyToClipboard = orig })

	_, _, err := execute(t, newApp(t, "table"), "toggle", "--copy")
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestPlaygroundWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.tsx")

	out, stderr, err := execute(t, newApp(t, "table"), "avatar", "-O", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<CyberAvatar")
	assert.True(t, strings.HasSuffix(string(data), "}\n"))
}

func TestPlaygroundWarnsOnUnknownID(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	app := newApp(t, "table")
	app.LoggerFunc = func() *zerolog.Logger { return &logger }

	out, _, err := execute(t, app, "holo-deck")
	require.NoError(t, err)
	assert.Contains(t, out, "<holo-deck />")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry), logs.String())
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "holo-deck", entry["component_id"])
	assert.Equal(t, "playground", entry["operation"])
}
