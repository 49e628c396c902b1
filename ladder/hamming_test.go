package ladder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wordladder/ladder"
)

func TestIsNeighbor(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"cat", "cot", true},
		{"cat", "cat", false},
		{"cat", "dog", false},
		{"cot", "cog", true},
		{"cot", "dot", true},
		{"cat", "cats", false},
		{"", "", false},
		{"a", "b", true},
		{"héllo", "hello", true},
		{"héllo", "hallo", true},
		{"héllo", "hallu", false},
		// invalid bytes are distinct positions, not one shared U+FFFD
		{"\xffbt", "\xfeat", false},
		{"\xffat", "\xfeat", true},
		{"\xffat", "\xffat", false},
		{"\xffat", "\xffot", true},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, ladder.IsNeighbor(tc.a, tc.b), "IsNeighbor(%q, %q)", tc.a, tc.b)
		assert.Equalf(t, tc.want, ladder.IsNeighbor(tc.b, tc.a), "IsNeighbor(%q, %q) symmetry", tc.b, tc.a)
	}
}

// TestIsNeighbor_Reflexive checks no word neighbors itself.
func TestIsNeighbor_Reflexive(t *testing.T) {
	for _, w := range []string{"a", "cat", "word", "ladder", "ünïcödé"} {
		assert.False(t, ladder.IsNeighbor(w, w), w)
	}
}

func TestWordLen(t *testing.T) {
	assert.Equal(t, 3, ladder.WordLen("cat"))
	assert.Equal(t, 5, ladder.WordLen("héllo"))
	assert.Equal(t, 0, ladder.WordLen(""))
}
