package uuid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPrefixed(t *testing.T) {
	pattern := regexp.MustCompile(`^exp_[0-9a-f]{12}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewPrefixed("exp")
		assert.Regexp(t, pattern, id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNew(t *testing.T) {
	a, b := New(), New()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestNewToken(t *testing.T) {
	tok := NewToken()
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), tok)
}
