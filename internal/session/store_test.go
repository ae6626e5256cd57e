package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "token"), nil)
}

func TestToken_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	tok := signedToken(t, jwt.MapClaims{
		"sub": "alice@example.org",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	require.NoError(t, s.Save(tok))
	assert.Equal(t, tok, s.Token())
}

func TestToken_MissingFile(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "", s.Token())
}

func TestToken_ExpiredIsPurged(t *testing.T) {
	s := newTestStore(t)
	tok := signedToken(t, jwt.MapClaims{
		"sub": "alice@example.org",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, s.Save(tok))

	assert.Equal(t, "", s.Token())

	// the stored value must be gone, not just ignored
	_, err := os.Stat(s.path)
	assert.True(t, os.IsNotExist(err))
}

func TestToken_ExpiryBoundary(t *testing.T) {
	s := newTestStore(t)
	exp := time.Now().Add(30 * time.Second)
	tok := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})
	require.NoError(t, s.Save(tok))

	origNow := timeNow
	defer func() { timeNow = origNow }()

	timeNow = func() time.Time { return exp.Add(-10 * time.Second) }
	assert.Equal(t, tok, s.Token(), "token should be valid before exp")

	timeNow = func() time.Time { return exp.Add(10 * time.Second) }
	assert.Equal(t, "", s.Token(), "token should be absent after exp")
}

func TestToken_MalformedIsAbsentButNotPurged(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("not.a.jwt"))

	assert.Equal(t, "", s.Token())

	// only expiry purges; malformed data stays on disk
	_, err := os.Stat(s.path)
	assert.NoError(t, err)
}

func TestToken_NoExpNeverExpires(t *testing.T) {
	s := newTestStore(t)
	tok := signedToken(t, jwt.MapClaims{"sub": "bob"})
	require.NoError(t, s.Save(tok))
	assert.Equal(t, tok, s.Token())
}

func TestClear_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("x"))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
}

func TestClaims(t *testing.T) {
	s := newTestStore(t)
	tok := signedToken(t, jwt.MapClaims{
		"sub":   "alice@example.org",
		"name":  "Alice",
		"email": "alice@example.org",
		"id":    float64(42),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, s.Save(tok))

	claims := s.Claims()
	require.NotNil(t, claims)
	assert.Equal(t, "alice@example.org", Email(claims))
	assert.Equal(t, "Alice", DisplayName(claims))
	assert.Equal(t, "42", UserID(claims))
}
