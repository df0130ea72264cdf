package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboardMemberEncoding(t *testing.T) {
	member := memberOf("p-123", "NovaStar42")
	assert.Equal(t, "p-123|NovaStar42", member)

	id, username := splitMember(member)
	assert.Equal(t, "p-123", id)
	assert.Equal(t, "NovaStar42", username)
}

func TestSplitMemberWithoutUsername(t *testing.T) {
	id, username := splitMember("p-456")
	assert.Equal(t, "p-456", id)
	assert.Empty(t, username)
}
