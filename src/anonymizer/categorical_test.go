package anonymizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizeCategorical(t *testing.T) {
	assert := assert.New(t)

	values := []string{"red", "blue", "red", ""}
	anonymized, mapping := AnonymizeCategorical(values)

	assert.Len(anonymized, 4)
	assert.Equal(anonymized[0], anonymized[2], "duplicate values must collapse to one token")
	assert.NotEqual(anonymized[0], anonymized[1])

	// one mapping entry per distinct value, null-like sentinels included
	assert.Len(mapping, 3)
	assert.Equal("red", mapping[anonymized[0]])
	assert.Equal("blue", mapping[anonymized[1]])
	assert.Equal("", mapping[anonymized[3]])
}

func TestAnonymizeCategoricalPreservesOrder(t *testing.T) {
	assert := assert.New(t)

	values := []string{"b", "a", "c", "a"}
	anonymized, _ := AnonymizeCategorical(values)

	for i, v := range values {
		assert.Equal(MintToken(v), anonymized[i], "row %d", i)
	}
}

func TestAnonymizeCategoricalEmptyInput(t *testing.T) {
	assert := assert.New(t)
	anonymized, mapping := AnonymizeCategorical(nil)
	assert.Empty(anonymized)
	assert.Empty(mapping)
}
