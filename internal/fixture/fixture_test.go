package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/rawbytedev/tachyon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, v tachyon.Value) string {
	t.Helper()
	b := tachyon.NewBuffer(1024)
	v.Encode(b, false)
	require.False(t, b.Failed())
	return b.String()
}

func TestLoadYAMLKeepsOrder(t *testing.T) {
	doc := `
zeta: 1
alpha: "two"
list: [true, false, null, 1.5, -3]
nested:
  skip: !undefined
  keep: "x\ty"
`
	v, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":"two","list":[true,false,null,1.5,-3],"nested":{"keep":"x\ty"}}`, encode(t, v))
}

func TestLoadJSON(t *testing.T) {
	doc := `{"b": [1, {"c": "d"}], "a": null}`
	v, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	out := encode(t, v)
	assert.Equal(t, `{"b":[1,{"c":"d"}],"a":null}`, out)

	var decoded any
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, ToAny(v), decoded)
}

func TestLoadAliases(t *testing.T) {
	doc := `
base: &b {x: 1}
copy: *b
`
	v, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, `{"base":{"x":1},"copy":{"x":1}}`, encode(t, v))
}

func TestLoadUndefinedInSequence(t *testing.T) {
	v, err := Load(strings.NewReader(`[1, !undefined ~, 2]`))
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, encode(t, v))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Load(strings.NewReader(`"a\"b": 1`))
	require.ErrorIs(t, err, ErrUnsafeKey)

	_, err = Load(strings.NewReader(`? [1, 2]
: 3`))
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = Load(strings.NewReader(`x: !!binary aGVsbG8=`))
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = Load(strings.NewReader("a: [1,"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.yaml")
	require.NoError(t, os.WriteFile(path, []byte("k: v\n"), 0o600))
	v, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"k":"v"}`, encode(t, v))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestToAny(t *testing.T) {
	v := tachyon.Obj(
		tachyon.KV("a", tachyon.Arr(tachyon.True, tachyon.Undefined, tachyon.Number(2))),
		tachyon.KV("b", tachyon.Undefined),
		tachyon.KV("c", tachyon.Null),
	)
	assert.Equal(t, map[string]any{"a": []any{true, 2.0}, "c": nil}, ToAny(v))
}
