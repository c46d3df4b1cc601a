package tracer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gridsow/internal/tree"
)

func fixture() tree.Value {
	return tree.MustFromNative(map[string]any{
		"train": map[string]any{
			"lr":     0.1,
			"layers": []any{map[string]any{"width": 64}, map[string]any{"width": 128}},
		},
		"seed": 7,
	})
}

func TestAdvance_EmptyPathPointsAtRoot(t *testing.T) {
	root := fixture()
	tr := New(root)
	require.NoError(t, tr.Advance(""))

	assert.True(t, tree.Equal(root, tr.Pointed()))
	assert.True(t, tree.Equal(root, tr.State()))
	assert.Equal(t, tree.KindMapping, tr.Parent().Kind())
	assert.Equal(t, 1, tr.Parent().Mapping().Len())
	assert.True(t, tr.Path().IsRoot())
}

func TestAdvance_ResolvesKeysAndIndices(t *testing.T) {
	tr := New(fixture())
	require.NoError(t, tr.Advance("train.layers.1.width"))

	assert.Equal(t, tree.Int(128), tr.Pointed())
	assert.Equal(t, "width", tr.ChildToken().Key)
	assert.Equal(t, tree.KindMapping, tr.Parent().Kind())
	assert.Equal(t, "train.layers.1.width", tr.Path().String())
}

func TestAdvance_Failures(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		position int
		token    string
		cause    error
	}{
		{"missing key", "train.momentum", 1, "momentum", tree.ErrMissingKey},
		{"index out of range", "train.layers.5", 2, "5", tree.ErrIndexRange},
		{"key into sequence", "train.layers.first", 2, "first", tree.ErrContainerKind},
		{"index into scalar", "seed.0", 1, "0", tree.ErrContainerKind},
		{"missing first token", "eval", 0, "eval", tree.ErrMissingKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := New(fixture()).Advance(tc.path)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrPathResolution)
			require.ErrorIs(t, err, tc.cause)

			var perr *PathResolutionError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tc.position, perr.Position)
			assert.Equal(t, tc.token, perr.Token)
			assert.Equal(t, tc.path, perr.Path)
			assert.Contains(t, err.Error(), tc.token)
		})
	}
}

func TestAdvance_ErrorSnapshotsIndexedNode(t *testing.T) {
	err := New(fixture()).Advance("train.momentum")
	var perr *PathResolutionError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, []string{"layers", "lr"}, perr.Node.Mapping().Keys())
}

func TestSet_WritesThroughToState(t *testing.T) {
	root := fixture()
	tr := New(root)
	require.NoError(t, tr.Advance("train.layers.0.width"))
	require.NoError(t, tr.Set(tree.Int(32)))

	check := New(tr.State())
	require.NoError(t, check.Advance("train.layers.0.width"))
	assert.Equal(t, tree.Int(32), check.Pointed())

	// the tracer edits in place
	same := New(root)
	require.NoError(t, same.Advance("train.layers.0.width"))
	assert.Equal(t, tree.Int(32), same.Pointed())
}

func TestSet_AtRootReplacesState(t *testing.T) {
	tr := New(fixture())
	require.NoError(t, tr.Set(tree.String("gone")))
	assert.Equal(t, tree.String("gone"), tr.State())
}

func TestAdvance_DigitTokenFallsBackToMappingKey(t *testing.T) {
	root := tree.NewMapping(tree.E("0", tree.String("zero")))
	tr := New(root)
	require.NoError(t, tr.Advance("0"))
	assert.Equal(t, tree.String("zero"), tr.Pointed())
}
