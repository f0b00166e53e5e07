package leaderboard

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePseudonymDeterministic(t *testing.T) {
	first := GeneratePseudonym("user-123")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GeneratePseudonym("user-123"))
	}
	assert.NotEqual(t, first, GeneratePseudonym("user-124"))
}

func TestGeneratePseudonymFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z]+-[A-Za-z]+-[A-Za-z]+-\d{2}$`)

	for _, id := range []string{"", "a", "user-123", "3c9a2d17-58d2-4b5f-9a41-000000000000"} {
		p := GeneratePseudonym(id)
		assert.Regexp(t, pattern, p, "pseudonym %q for id %q", p, id)
	}

	assert.NotContains(t, GeneratePseudonym("user-123"), "user-123", "pseudonym leaks the user id")
}
