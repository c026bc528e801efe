package types

import (
	"encoding/json"
	"strings"
)

// Scopes is a list of OAuth2 scopes.
// The text form accepts spaces, commas and plus signs as separators,
// so "openid+profile", "openid,profile" and "openid profile" are equal.
type Scopes []string

func NewScopes(text string) Scopes {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '+' || r == ','
	})
}

// String returns the space delimited scope parameter.
//
//goland:noinspection GoMixedReceiverTypes
func (s Scopes) String() string {
	return strings.Join(s, " ")
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
//goland:noinspection GoMixedReceiverTypes
func (s Scopes) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
//goland:noinspection GoMixedReceiverTypes
func (s *Scopes) UnmarshalText(text []byte) error {
	*s = NewScopes(string(text))

	return nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both a JSON list and a single delimited string are accepted.
//
//goland:noinspection GoMixedReceiverTypes
func (s *Scopes) UnmarshalJSON(jsonBytes []byte) error {
	var text string
	if err := json.Unmarshal(jsonBytes, &text); err == nil {
		*s = NewScopes(text)

		return nil
	}

	var slice []string
	if err := json.Unmarshal(jsonBytes, &slice); err != nil {
		return err //nolint:wrapcheck
	}

	*s = slice

	return nil
}
