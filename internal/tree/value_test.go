package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func sampleTree() Value {
	return NewMapping(
		E("train", NewMapping(
			E("epochs", Int(40)),
			E("lr", Float(0.1)),
			E("tags", NewSequence(String("a"), String("b"))),
		)),
		E("name", String("base")),
	)
}

func TestClone_IsIndependent(t *testing.T) {
	orig := sampleTree()
	clone := orig.Clone()

	train, _ := clone.Mapping().Get("train")
	train.Mapping().Set("epochs", Int(99))
	tags, _ := train.Mapping().Get("tags")
	require.NoError(t, tags.Sequence().Insert(0, String("z")))

	origTrain, _ := orig.Mapping().Get("train")
	epochs, _ := origTrain.Mapping().Get("epochs")
	assert.Equal(t, Int(40), epochs)
	origTags, _ := origTrain.Mapping().Get("tags")
	assert.Equal(t, 2, origTags.Sequence().Len())
	assert.False(t, Equal(orig, clone))
}

func TestMapping_PreservesOrder(t *testing.T) {
	m := NewMapping(E("z", Int(1)), E("a", Int(2)), E("m", Int(3))).Mapping()
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	require.NoError(t, m.Delete("a"))
	require.NoError(t, m.Add("a", Int(4)))
	assert.Equal(t, []string{"z", "m", "a"}, m.Keys())

	err := m.Add("z", Int(0))
	require.ErrorIs(t, err, ErrDuplicateKey)
	err = m.Delete("nope")
	require.ErrorIs(t, err, ErrMissingKey)
}

func TestSequence_InsertDelete(t *testing.T) {
	s := NewSequence(Int(1), Int(2)).Sequence()
	require.NoError(t, s.Insert(2, Int(3)))
	require.NoError(t, s.Insert(0, Int(0)))
	assert.Equal(t, "[0, 1, 2, 3]", Value{kind: KindSequence, seq: s}.String())

	require.ErrorIs(t, s.Insert(9, Int(9)), ErrIndexRange)
	require.NoError(t, s.Delete(1))
	require.ErrorIs(t, s.Delete(3), ErrIndexRange)
	assert.Equal(t, 3, s.Len())
}

func TestLen_Scalar(t *testing.T) {
	_, err := Int(3).Len()
	require.ErrorIs(t, err, ErrContainerKind)
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"same tree", sampleTree(), sampleTree(), true},
		{"int equals float", Int(2), Float(2.0), true},
		{"int differs from float", Int(2), Float(2.5), false},
		{"string vs int", String("2"), Int(2), false},
		{
			name:  "key order ignored",
			a:     NewMapping(E("a", Int(1)), E("b", Int(2))),
			b:     NewMapping(E("b", Int(2)), E("a", Int(1))),
			equal: true,
		},
		{
			name:  "sequence order matters",
			a:     NewSequence(Int(1), Int(2)),
			b:     NewSequence(Int(2), Int(1)),
			equal: false,
		},
		{"null", Null(), Null(), true},
		{"null vs empty", Null(), String(""), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, Equal(tc.a, tc.b))
		})
	}
}

func TestEqualIgnoring_SkipsRootKeys(t *testing.T) {
	a := NewMapping(E("__meta__", String("x")), E("lr", Float(0.1)))
	b := NewMapping(E("lr", Float(0.1)))
	assert.False(t, Equal(a, b))
	assert.True(t, EqualIgnoring(a, b, "__meta__"))

	nestedA := NewMapping(E("inner", a))
	nestedB := NewMapping(E("inner", b))
	assert.False(t, EqualIgnoring(nestedA, nestedB, "__meta__"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, `{train: {epochs: 40, lr: 0.1, tags: ["a", "b"]}, name: "base"}`, sampleTree().String())
	assert.Equal(t, "2.0", Float(2).Text())
	assert.Equal(t, "1e-05", Float(0.00001).Text())
	assert.Equal(t, "null", Null().Text())
	assert.Equal(t, "true", Bool(true).Text())
	assert.Equal(t, "plain", String("plain").String())
}

func TestLabel(t *testing.T) {
	testCases := []struct {
		value    Value
		expected string
	}{
		{Bool(true), "True"},
		{Bool(false), "False"},
		{Null(), "None"},
		{Int(3), "3"},
		{Float(0.5), "0.5"},
		{Float(2), "2.0"},
		{Float(math.Inf(1)), "inf"},
		{Float(math.NaN()), "nan"},
		{String("slow"), "slow"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.value.Label())
		})
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Null().Truthy())
	assert.False(t, String("").Truthy())
	assert.False(t, NewSequence().Truthy())
	assert.False(t, NewMapping().Truthy())
	assert.True(t, String("x").Truthy())
	assert.True(t, NewSequence(Null()).Truthy())
}

func TestNativeRoundTrip(t *testing.T) {
	native := map[string]any{
		"b": []any{1, 2.5, "x", nil, true},
		"a": map[string]any{"k": "v"},
	}
	v, err := FromNative(native)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v.Mapping().Keys())

	back := ToNative(v)
	expected := map[string]any{
		"b": []any{int64(1), 2.5, "x", nil, true},
		"a": map[string]any{"k": "v"},
	}
	assert.Equal(t, expected, back)

	_, err = FromNative(struct{}{})
	require.Error(t, err)
}

func TestFromNative_Uint64(t *testing.T) {
	v, err := FromNative(uint64(42))
	require.NoError(t, err)
	assert.Equal(t, Int(42), v)

	_, err = FromNative(uint64(math.MaxInt64) + 1)
	require.ErrorContains(t, err, "overflows int64")
}

func TestCtyRoundTrip(t *testing.T) {
	orig := NewMapping(
		E("a", Int(3)),
		E("b", Float(0.5)),
		E("c", NewSequence(String("x"), Bool(false), Null())),
		E("d", NewMapping()),
		E("e", NewSequence()),
	)
	ctyVal := ToCty(orig)
	require.True(t, ctyVal.Type().IsObjectType())

	back, err := FromCty(ctyVal)
	require.NoError(t, err)
	assert.True(t, Equal(orig, back), "got %s", back)
	b, _ := back.Mapping().Get("a")
	assert.Equal(t, KindInt, b.Kind())

	_, err = FromCty(cty.UnknownVal(cty.String))
	require.Error(t, err)
}
