package anonymizer

import (
	"crypto/md5"
	"encoding/hex"
)

// MintToken derives the replacement token for a content key. It is a pure
// function of the key's exact bytes: the same entity minted in any column or
// call yields the same 32-character hex token, which is what makes
// substring-replace reversal unambiguous and lets identical entities be
// linked across columns. The token is not a cryptographic commitment;
// dictionary attacks against it are out of scope.
func MintToken(contentKey string) string {
	sum := md5.Sum([]byte(contentKey))
	return hex.EncodeToString(sum[:])
}
