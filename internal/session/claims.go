package session

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/plateful/plateful/internal/common"
)

// Claims is the decoded JWT payload. The token signature is deliberately not
// verified here: verification is the backend's job, the client only reads
// identity hints and the expiry.
type Claims = jwt.MapClaims

// decodeClaims parses the payload segment of a dot-delimited JWT without
// verifying its signature.
func decodeClaims(token string) (Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return claims, nil
}

// expiredAt reports whether the exp claim (seconds since epoch) lies before
// now. A token without an exp claim never expires client-side.
func expiredAt(claims Claims, now time.Time) bool {
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// Email derives the user's email from the claims, trying email,
// preferred_username, username, and sub in order. First non-empty wins.
func Email(claims Claims) string {
	return firstClaim(claims, "email", "preferred_username", "username", "sub")
}

// DisplayName derives a human-readable name from the claims.
func DisplayName(claims Claims) string {
	return firstClaim(claims, "name", "preferred_username", "username")
}

// UserID derives the user id from the claims, accepting the id spellings
// seen across backends.
func UserID(claims Claims) string {
	return firstClaim(claims, "id", "userId", "user_id")
}

func firstClaim(claims Claims, keys ...string) string {
	if claims == nil {
		return ""
	}
	for _, key := range keys {
		if s := claimString(claims[key]); s != "" {
			return s
		}
	}
	return ""
}

// claimString renders a claim value as text. Numeric ids are common, so
// numbers are formatted without an exponent or trailing zeros.
func claimString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case json.Number:
		return value.String()
	default:
		return ""
	}
}
