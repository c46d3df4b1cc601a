package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gridsow/internal/tree"
)

const launchYAML = `
base:
  train:
    epochs: 40
    lr: 0.1
    fun: 1
    name: baseline
    resume: null
    shuffle: true
base_modify:
  - train.epochs: 50
particular:
  - name: exp1
    expand:
      - alias: [slow, fast]
        train.lr: [0.5, 0.7]
`

func TestDecodeYAML_KeepsOrderAndTypes(t *testing.T) {
	v, err := DecodeYAML([]byte(launchYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "base_modify", "particular"}, v.Mapping().Keys())

	base, _ := v.Mapping().Get("base")
	train, _ := base.Mapping().Get("train")
	assert.Equal(t, []string{"epochs", "lr", "fun", "name", "resume", "shuffle"}, train.Mapping().Keys())

	expected := tree.MustFromNative(map[string]any{
		"epochs": 40, "lr": 0.1, "fun": 1, "name": "baseline", "resume": nil, "shuffle": true,
	})
	assert.True(t, tree.Equal(expected, train), "got %s", train)
	epochs, _ := train.Mapping().Get("epochs")
	assert.Equal(t, tree.KindInt, epochs.Kind())
}

func TestDecodeYAML_JSON(t *testing.T) {
	v, err := DecodeYAML([]byte(`{"z": 1, "a": [1.5, "x", false]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, v.Mapping().Keys())
	assert.Equal(t, `{z: 1, a: [1.5, "x", false]}`, v.String())
}

func TestDecodeYAML_AnchorsAndMerge(t *testing.T) {
	src := `
defaults: &defaults
  lr: 0.1
  epochs: 10
run:
  <<: *defaults
  epochs: 20
copy: *defaults
`
	v, err := DecodeYAML([]byte(src))
	require.NoError(t, err)

	run, _ := v.Mapping().Get("run")
	assert.True(t, tree.Equal(tree.MustFromNative(map[string]any{"lr": 0.1, "epochs": 20}), run), "got %s", run)
	cp, _ := v.Mapping().Get("copy")
	assert.True(t, tree.Equal(tree.MustFromNative(map[string]any{"lr": 0.1, "epochs": 10}), cp))
}

func TestDecodeYAML_Errors(t *testing.T) {
	_, err := DecodeYAML([]byte("a: 1\na: 2\n"))
	require.ErrorIs(t, err, ErrDecode)

	_, err = DecodeYAML([]byte("a: [1, 2"))
	require.ErrorIs(t, err, ErrDecode)

	v, err := DecodeYAML(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestEncodeYAML_RoundTrip(t *testing.T) {
	orig := tree.NewMapping(
		tree.E("train", tree.NewMapping(
			tree.E("lr", tree.Float(2)),
			tree.E("epochs", tree.Int(70)),
			tree.E("tag", tree.String("true")),
			tree.E("none", tree.Null()),
		)),
		tree.E("layers", tree.NewSequence(tree.Int(64), tree.Int(32))),
		tree.E("empty", tree.NewMapping()),
	)
	data, err := EncodeYAML(orig)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lr: 2.0\n")

	back, err := DecodeYAML(data)
	require.NoError(t, err)
	assert.True(t, tree.Equal(orig, back), "got %s from\n%s", back, data)
	assert.Equal(t, []string{"train", "layers", "empty"}, back.Mapping().Keys())

	train, _ := back.Mapping().Get("train")
	tag, _ := train.Mapping().Get("tag")
	assert.Equal(t, tree.KindString, tag.Kind())
	lr, _ := train.Mapping().Get("lr")
	assert.Equal(t, tree.KindFloat, lr.Kind())
}

const launchHCL = `
desc = "sweep"
base = {
  train = {
    epochs = 40
    lr     = 0.1
  }
}
base_modify = [
  { "train.epochs" = 50 },
]
particular = [
  {
    name   = "exp1"
    expand = [{ alias = ["slow", "fast"], "train.lr" = [0.5, 0.7] }]
  },
]
`

func TestDecodeHCL(t *testing.T) {
	v, err := DecodeHCL([]byte(launchHCL), "launch.hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{"desc", "base", "base_modify", "particular"}, v.Mapping().Keys())

	expected, err := DecodeYAML([]byte(`
desc: sweep
base: {train: {epochs: 40, lr: 0.1}}
base_modify: [{train.epochs: 50}]
particular:
  - name: exp1
    expand: [{alias: [slow, fast], train.lr: [0.5, 0.7]}]
`))
	require.NoError(t, err)
	assert.True(t, tree.Equal(expected, v), "got %s", v)

	particular, _ := v.Mapping().Get("particular")
	entry, _ := particular.Sequence().Get(0)
	assert.Equal(t, []string{"name", "expand"}, entry.Mapping().Keys())
}

func TestDecodeHCL_RejectsNonLiterals(t *testing.T) {
	testCases := map[string]string{
		"variable": `a = var.x`,
		"function": `a = file("/etc/passwd")`,
		"block":    "step \"x\" {\n}\n",
		"syntax":   `a = `,
	}
	for name, src := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeHCL([]byte(src), "bad.hcl")
			require.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestEncodeHCL(t *testing.T) {
	v := tree.NewMapping(
		tree.E("train", tree.NewMapping(
			tree.E("lr", tree.Float(0.5)),
			tree.E("epochs", tree.Int(70)),
			tree.E("odd.key", tree.Bool(true)),
		)),
		tree.E("tags", tree.NewSequence(tree.String("a"))),
	)
	data, err := EncodeHCL(v)
	require.NoError(t, err)

	back, err := DecodeHCL(data, "out.hcl")
	require.NoError(t, err)
	assert.True(t, tree.Equal(v, back), "got %s from\n%s", back, data)
	train, _ := back.Mapping().Get("train")
	assert.Equal(t, []string{"lr", "epochs", "odd.key"}, train.Mapping().Keys())

	_, err = EncodeHCL(tree.NewMapping(tree.E("bad key", tree.Int(1))))
	require.ErrorIs(t, err, ErrEncode)
	_, err = EncodeHCL(tree.Int(1))
	require.ErrorIs(t, err, ErrEncode)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "base.yml")
	require.NoError(t, os.WriteFile(yml, []byte("a: 1\n"), 0o644))
	hclPath := filepath.Join(dir, "base.hcl")
	require.NoError(t, os.WriteFile(hclPath, []byte("a = 1\n"), 0o644))

	for _, p := range []string{yml, hclPath} {
		v, err := ReadFile(p)
		require.NoError(t, err)
		assert.True(t, tree.Equal(tree.NewMapping(tree.E("a", tree.Int(1))), v))
	}

	_, err := ReadFile(filepath.Join(dir, "base.toml"))
	require.ErrorIs(t, err, ErrFormat)
	_, err = ReadFile(filepath.Join(dir, "missing.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
