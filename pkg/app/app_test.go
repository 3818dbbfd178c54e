package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/birdayz/morse/pkg/batch"
	"github.com/birdayz/morse/pkg/session"
)

func newTestApp(t *testing.T, cfg string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0600))

	var out, errOut bytes.Buffer
	a := New()
	a.OutWriter = &out
	a.ColorableOut = &out
	a.ErrWriter = &errOut
	a.CfgFile = path
	a.NoColorFlag = true
	require.NoError(t, a.InitConfig())
	return a, &out, &errOut
}

func TestInitConfig(t *testing.T) {
	a, _, _ := newTestApp(t, "mode: decode\nplaceholder: \"#\"\nlog-level: debug\n")
	require.Equal(t, "#", a.Codec.Placeholder())
	require.Equal(t, "debug", a.Log.GetLevel().String())

	mode, err := a.StartMode()
	require.NoError(t, err)
	require.Equal(t, session.ModeDecode, mode)
}

func TestInitConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("placeholder: \"#\"\n"), 0600))

	a := New()
	a.ErrWriter = &bytes.Buffer{}
	a.CfgFile = path
	a.PlaceholderFlag = "*"
	a.LogLevelFlag = "bogus"
	require.ErrorContains(t, a.InitConfig(), "invalid log level")

	a.LogLevelFlag = "error"
	require.NoError(t, a.InitConfig())
	require.Equal(t, "*", a.Codec.Placeholder())

	stored, err := a.StoredConfig()
	require.NoError(t, err)
	require.Equal(t, "#", stored.Placeholder)
}

func TestInitConfigRejectsMalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MORSE_MODE=\"decode\n"), 0644))
	t.Chdir(dir)

	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	a := New()
	a.ErrWriter = &bytes.Buffer{}
	a.CfgFile = path
	require.ErrorContains(t, a.InitConfig(), "invalid environment: load env file")
}

func TestReporterLogsWarnings(t *testing.T) {
	a, _, errOut := newTestApp(t, "")

	require.Equal(t, ".-", a.Codec.EncodeText("a~"))
	require.Contains(t, errOut.String(), `msg="skipping unsupported character"`)
	require.Contains(t, errOut.String(), "offset=1")

	errOut.Reset()
	require.Equal(t, "?", a.Codec.DecodeText("........"))
	require.Contains(t, errOut.String(), "code=........")

	errOut.Reset()
	require.Equal(t, "?", a.NewCodec(false).DecodeText("........"))
	require.Empty(t, errOut.String())
}

func TestHandleResult(t *testing.T) {
	a, out, _ := newTestApp(t, "")
	res := batch.Result{Line: 2, Input: "sos", Output: "... --- ..."}

	require.NoError(t, a.HandleResult(res, OutputFormatDefault, nil))
	require.Equal(t, "... --- ...\n", out.String())

	out.Reset()
	require.NoError(t, a.HandleResult(res, OutputFormatJSONEachRow, nil))
	require.JSONEq(t, `{"line":2,"input":"sos","output":"... --- ..."}`, out.String())

	out.Reset()
	require.NoError(t, a.HandleResult(res, OutputFormatJSON, nil))
	require.JSONEq(t, `{"line":2,"input":"sos","output":"... --- ..."}`, out.String())
	require.Contains(t, out.String(), "\n  \"input\": \"sos\"")

	out.Reset()
	tpl, err := ParseTemplate(`{{ .Line }} {{ .Input | upper | quote }}`)
	require.NoError(t, err)
	require.NoError(t, a.HandleResult(res, OutputFormatDefault, tpl))
	require.Equal(t, "2 \"SOS\"\n", out.String())
}

func TestOutputFormatFlag(t *testing.T) {
	var f OutputFormat
	require.NoError(t, f.Set("json-each-row"))
	require.Equal(t, OutputFormatJSONEachRow, f)
	require.Error(t, f.Set("yaml"))
	require.Equal(t, "OutputFormat", f.Type())
}
