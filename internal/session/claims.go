package session

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// decodePermissions extracts the "permissions" claim from the access token's
// payload segment without verifying the signature; the backend is the only
// party that ever validates tokens. The claim is either a JSON-encoded
// string or a native list of strings. Any malformed token or unexpected
// claim shape yields an empty set rather than an error, so a bad token
// degrades to "no extra permissions" instead of a crash.
func decodePermissions(accessToken string) []string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil
	}

	switch perms := claims["permissions"].(type) {
	case string:
		var tokens []string
		if err := json.Unmarshal([]byte(perms), &tokens); err != nil {
			return nil
		}

		return tokens
	case []any:
		tokens := make([]string, 0, len(perms))
		for _, p := range perms {
			if s, ok := p.(string); ok {
				tokens = append(tokens, s)
			}
		}

		return tokens
	default:
		return nil
	}
}
