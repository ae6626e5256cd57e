package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail_FallbackOrder(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		want   string
	}{
		{"email wins", Claims{"email": "a@x", "username": "u", "sub": "s"}, "a@x"},
		{"preferred_username next", Claims{"preferred_username": "p", "sub": "s"}, "p"},
		{"username next", Claims{"username": "u", "sub": "s"}, "u"},
		{"sub last", Claims{"sub": "s"}, "s"},
		{"empty values skipped", Claims{"email": "", "sub": "s"}, "s"},
		{"nothing", Claims{}, ""},
		{"nil claims", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.claims))
		})
	}
}

func TestDisplayName_FallbackOrder(t *testing.T) {
	assert.Equal(t, "Alice", DisplayName(Claims{"name": "Alice", "username": "al"}))
	assert.Equal(t, "al", DisplayName(Claims{"username": "al"}))
	assert.Equal(t, "", DisplayName(Claims{"sub": "nope"}))
}

func TestUserID_Spellings(t *testing.T) {
	assert.Equal(t, "1", UserID(Claims{"id": float64(1)}))
	assert.Equal(t, "2", UserID(Claims{"userId": "2"}))
	assert.Equal(t, "3", UserID(Claims{"user_id": float64(3)}))
	assert.Equal(t, "", UserID(Claims{"uid": "4"}))
}

func TestClaimString_NumberFormatting(t *testing.T) {
	// large numeric ids must not turn into exponent notation
	assert.Equal(t, "9007199254", claimString(float64(9007199254)))
	assert.Equal(t, "", claimString([]string{"x"}))
}
