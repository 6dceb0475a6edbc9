package anonymizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMintTokenIsDeterministic(t *testing.T) {
	assert := assert.New(t)
	inputs := []string{"John", "Paris", "a@b.com", "", "entity with spaces", "ünïcode"}
	for _, input := range inputs {
		assert.Equal(MintToken(input), MintToken(input), "minting %q twice", input)
	}
}

func TestMintTokenShape(t *testing.T) {
	assert := assert.New(t)
	testcases := []struct {
		contentKey string
		expected   string
	}{
		{"John", "61409aa1fd47d4a5332de23cbf59a36f"},
		{"Paris", "e20d37a5d7fcc4c35be6fc18a8e71bfa"},
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
	}
	for _, tc := range testcases {
		token := MintToken(tc.contentKey)
		assert.Equal(tc.expected, token, "%q", tc.contentKey)
		assert.Len(token, 32)
		assert.Regexp(`^[0-9a-f]{32}$`, token)
	}
}

func TestMintTokenIsCaseAndWhitespaceSensitive(t *testing.T) {
	assert := assert.New(t)
	assert.NotEqual(MintToken("John"), MintToken("john"))
	assert.NotEqual(MintToken("John"), MintToken("John "))
}
