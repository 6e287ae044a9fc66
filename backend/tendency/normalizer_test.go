package tendency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braingrow/backend/taxonomy"
)

func testCatalog() taxonomy.Catalog {
	return taxonomy.Catalog{
		"math": {
			"algebra":  {"equations", "polynomials"},
			"geometry": {"triangles", "circles"},
		},
	}
}

func TestNormalizeRawString(t *testing.T) {
	keywords, serialized, err := Normalize(Input{Raw: "Math, algebra  ai,, nlp"}, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "algebra", "ai", "nlp"}, keywords)
	assert.Equal(t, "math,algebra,ai,nlp", serialized)
}

func TestNormalizeTagList(t *testing.T) {
	keywords, _, err := Normalize(Input{Tags: []string{"AI", "ai", " ", "Robotics"}}, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, []string{"ai", "robotics"}, keywords)
}

func TestNormalizeDedupesCaseInsensitively(t *testing.T) {
	keywords, _, err := Normalize(Input{Raw: "Math math MATH algebra"}, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "algebra"}, keywords)
}

func TestNormalizeIdempotent(t *testing.T) {
	first, serialized, err := Normalize(Input{Raw: "Math, Algebra equations"}, testCatalog())
	require.NoError(t, err)

	second, reserialized, err := Normalize(Input{Raw: serialized}, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, serialized, reserialized)
}

func TestNormalizeSelectionAllTopics(t *testing.T) {
	keywords, _, err := Normalize(Input{Selected: map[string][]string{
		"math": {"algebra", "geometry"},
	}}, testCatalog())
	require.NoError(t, err)

	// Choosing every topic under the board emits the board token itself.
	assert.Contains(t, keywords, "math")
	assert.Contains(t, keywords, "algebra")
	assert.Contains(t, keywords, "geometry")
	assert.Contains(t, keywords, "equations")
	assert.Contains(t, keywords, "triangles")
}

func TestNormalizeSelectionPartialTopics(t *testing.T) {
	keywords, _, err := Normalize(Input{Selected: map[string][]string{
		"math": {"algebra"},
	}}, testCatalog())
	require.NoError(t, err)

	assert.NotContains(t, keywords, "math")
	assert.Equal(t, []string{"algebra", "equations", "polynomials"}, keywords)
}

func TestNormalizeSelectionUnknownBoard(t *testing.T) {
	keywords, _, err := Normalize(Input{Selected: map[string][]string{
		"history": {"rome"},
	}}, testCatalog())
	require.NoError(t, err)

	// Unknown taxonomy keys degrade to the bare tokens, never fail.
	assert.Equal(t, []string{"rome"}, keywords)
}

func TestNormalizeSelectionCaseInsensitiveSuperset(t *testing.T) {
	keywords, _, err := Normalize(Input{Selected: map[string][]string{
		"Math": {"Algebra", "GEOMETRY"},
	}}, testCatalog())
	require.NoError(t, err)
	assert.Contains(t, keywords, "math")
}

func TestNormalizeNoInput(t *testing.T) {
	_, _, err := Normalize(Input{}, testCatalog())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = Normalize(Input{Raw: "   "}, testCatalog())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNormalizeEmptyTagListIsValid(t *testing.T) {
	// An explicit empty list clears the tendency rather than erroring.
	keywords, serialized, err := Normalize(Input{Tags: []string{}}, testCatalog())
	require.NoError(t, err)
	assert.Empty(t, keywords)
	assert.Equal(t, "", serialized)
}

func TestSplitKeywords(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitKeywords("a,b c"))
	assert.Empty(t, SplitKeywords(" , ,, "))
}

func TestNormalizeNoEmptyTokens(t *testing.T) {
	keywords, _, err := Normalize(Input{Raw: "  ,  math ,, "}, testCatalog())
	require.NoError(t, err)
	for _, kw := range keywords {
		assert.NotEmpty(t, kw)
	}
	assert.Equal(t, []string{"math"}, keywords)
}
