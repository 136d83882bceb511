package uuid

import (
	"strings"

	googleuuid "github.com/google/uuid"
)

// suffixLen is the number of hex characters kept from a random UUID when
// building a prefixed identifier.
const suffixLen = 12

// New returns a random UUID string. Used for request correlation IDs.
func New() string {
	return googleuuid.NewString()
}

// NewPrefixed returns an identifier of the form "<prefix>_<12 hex chars>",
// e.g. "exp_1a2b3c4d5e6f".
func NewPrefixed(prefix string) string {
	hex := strings.ReplaceAll(googleuuid.NewString(), "-", "")
	return prefix + "_" + hex[:suffixLen]
}

// NewToken returns an opaque random token. Used when the identity provider
// does not hand back a session token of its own.
func NewToken() string {
	return strings.ReplaceAll(googleuuid.NewString(), "-", "") +
		strings.ReplaceAll(googleuuid.NewString(), "-", "")
}
