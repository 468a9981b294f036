package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwulff/zen/internal/render"
)

// TestMain points the user config dir at a scratch directory so the default
// overlay path never touches a real one.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "zen-cli-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("XDG_CONFIG_HOME", dir)
	os.Setenv("HOME", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// isolateConfigDir gives one test its own user config dir.
func isolateConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

// run executes the command tree with an isolated config path.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	full := append([]string{"--config", filepath.Join(dir, "config.yaml")}, args...)

	cmd, e := newRootCmd()
	defer e.close()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(full)
	err := cmd.Execute()
	return out.String(), err
}

func TestDrawSeededIsReproducible(t *testing.T) {
	a, err := run(t, "draw", "--seed", "11")
	require.NoError(t, err)
	b, err := run(t, "draw", "--seed", "11")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "卦象（上到下）：")
	assert.Contains(t, a, render.Marker)
}

func TestDrawJSON(t *testing.T) {
	out, err := run(t, "draw", "--json")
	require.NoError(t, err)

	var got render.ResultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Lines, 6)
	assert.GreaterOrEqual(t, got.MovingLine, 1)
	assert.LessOrEqual(t, got.MovingLine, 6)
}

func TestLookup(t *testing.T) {
	out, err := run(t, "lookup", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "䷀ 乾")
	assert.Contains(t, out, "卦辞：元亨利贞。")
	assert.Contains(t, out, "  6. 上九：亢龙有悔。")
	assert.NotContains(t, out, "not in catalog")
}

func TestLookupFallback(t *testing.T) {
	out, err := run(t, "lookup", "5", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "☴☱ 上巽下兑  (not in catalog)")
	assert.Contains(t, out, "  1. 初爻爻辞待补全。")
}

func TestLookupInvalid(t *testing.T) {
	_, err := run(t, "lookup", "9", "1")
	assert.ErrorContains(t, err, "trigram id out of range")

	_, err = run(t, "lookup", "x", "1")
	assert.ErrorContains(t, err, "upper trigram")
}

func TestTrigrams(t *testing.T) {
	out, err := run(t, "trigrams")
	require.NoError(t, err)
	assert.Contains(t, out, "1  ☰ 乾 Qian")
	assert.Contains(t, out, "8  ☷ 坤 Kun")
}

func TestOverlayImportThenLookup(t *testing.T) {
	dir := t.TempDir()
	overlay := filepath.Join(dir, "overlay.sqlite")
	src := filepath.Join(dir, "texts.yaml")
	require.NoError(t, os.WriteFile(src, []byte(`
- upper: 5
  lower: 2
  name: 中孚
  glyph: ䷼
  judgment: 豚鱼吉，利涉大川，利贞。
`), 0644))

	out, err := run(t, "--overlay", overlay, "overlay", "import", src)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 records")

	out, err = run(t, "--overlay", overlay, "lookup", "5", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "䷼ 中孚")
	assert.NotContains(t, out, "not in catalog")

	out, err = run(t, "--overlay", overlay, "overlay", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "(5,2)  ䷼ 中孚")
}

func TestOverlayDefaultPathFeedsCatalog(t *testing.T) {
	home := isolateConfigDir(t)
	src := filepath.Join(t.TempDir(), "texts.yaml")
	require.NoError(t, os.WriteFile(src, []byte(`
- upper: 5
  lower: 2
  name: 中孚
  glyph: ䷼
`), 0644))

	out, err := run(t, "overlay", "import", src)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(home, "zen", "overlay.sqlite"))

	out, err = run(t, "lookup", "5", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "䷼ 中孚")
	assert.NotContains(t, out, "not in catalog")

	out, err = run(t, "draw", "--json")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestLogFileClosedAfterFailedCommand(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "zen.log")
	cmd, e := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--config", filepath.Join(t.TempDir(), "config.yaml"),
		"--log-file", logPath,
		"lookup", "9", "1",
	})

	require.Error(t, cmd.Execute())
	require.Len(t, e.closers, 1)
	f, ok := e.closers[0].(*os.File)
	require.True(t, ok)

	e.close()
	assert.Empty(t, e.closers)
	_, err := f.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.FileExists(t, logPath)
}

func TestUnreadableOverlayFallsBackToBuiltin(t *testing.T) {
	bogus := filepath.Join(t.TempDir(), "bogus.sqlite")
	require.NoError(t, os.WriteFile(bogus, []byte("not a database"), 0644))

	out, err := run(t, "--overlay", bogus, "lookup", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "䷀ 乾")
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("draw:\n  seed: 99\n"), 0644))

	draw := func(args ...string) string {
		cmd, e := newRootCmd()
		defer e.close()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(append([]string{"--config", cfgPath, "draw", "--json"}, args...))
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	fromFile := draw()
	assert.Equal(t, fromFile, draw())
	flagged, err := run(t, "draw", "--json", "--seed", "99")
	require.NoError(t, err)
	assert.Equal(t, fromFile, flagged)
}
