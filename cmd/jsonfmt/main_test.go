package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/jsonext"
	"github.com/unkn0wn-root/jsonext/codec"
)

func runCLI(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, strings.NewReader(input), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestCompactSortsKeys(t *testing.T) {
	out, _, err := runCLI(t, `{"b": [1, 2.50], "a": null}`)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":null,\"b\":[1,2.5]}\n", out)
}

func TestPrettyAndOrdered(t *testing.T) {
	out, _, err := runCLI(t, `{"b":1,"a":{}}`, "-pretty", "-indent", "4", "-ordered")
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"b\": 1,\n    \"a\": {}\n}\n", out)
}

func TestExactKeepsDecimals(t *testing.T) {
	out, _, err := runCLI(t, `[0.1000, 1e-2]`, "-exact")
	require.NoError(t, err)
	assert.Equal(t, "[0.1,0.01]\n", out)
}

func TestASCII(t *testing.T) {
	out, _, err := runCLI(t, "\"\xc3\xa9\"", "-ascii")
	require.NoError(t, err)
	assert.Equal(t, "\"\\u00e9\"\n", out)
}

func TestSequence(t *testing.T) {
	out, _, err := runCLI(t, "{\"b\":1,\"a\":2}\n[ 1 ]\n\"x\"\n", "-seq")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":2,\"b\":1}\n[1]\n\"x\"\n", out)

	_, _, err = runCLI(t, "1 {", "-seq")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value 2")
}

func TestMalformedInput(t *testing.T) {
	var mj *jsonext.MalformedJSONError
	for _, args := range [][]string{nil, {"-seq"}} {
		_, _, err := runCLI(t, `{"a":1} trailing`, args...)
		assert.ErrorAs(t, err, &mj, "%v", args)

		out, _, err := runCLI(t, `{"a":1,null:2}`, args...)
		assert.ErrorAs(t, err, &mj, "%v", args)
		assert.Empty(t, out)
	}
}

func TestMaxBytes(t *testing.T) {
	_, _, err := runCLI(t, `[1,2,3,4,5,6,7,8,9]`, "-max-bytes", "8")
	assert.ErrorIs(t, err, codec.ErrTooLarge)

	_, _, err = runCLI(t, strings.Repeat(`[1,2,3,4,5,6,7,8,9] `, 10), "-seq", "-max-bytes", "32")
	assert.ErrorIs(t, err, codec.ErrTooLarge)

	out, _, err := runCLI(t, `[1]`, "-max-bytes", "8")
	require.NoError(t, err)
	assert.Equal(t, "[1]\n", out)
}

func TestConfigFileAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pretty: true\nindent: 3\n"), 0o644))

	out, _, err := runCLI(t, `[1]`, "-config", path)
	require.NoError(t, err)
	assert.Equal(t, "[\n   1\n]\n", out)

	out, _, err = runCLI(t, `[1]`, "-config", path, "-pretty=false")
	require.NoError(t, err)
	assert.Equal(t, "[1]\n", out)

	_, _, err = runCLI(t, `[1]`, "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := runCLI(t, `[1]`, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "codec built")
	assert.Contains(t, stderr, "formatted")

	_, stderr, err = runCLI(t, `[1]`)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestFileArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"k":true}`), 0o644))

	out, _, err := runCLI(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "{\"k\":true}\n", out)
}
