package common

import "go/token"

// UnknownStr is the String() value of enum members without a name.
const UnknownStr = "unknown"

// IsIdent reports whether s is a valid Go identifier that is not a keyword.
func IsIdent(s string) bool {
	return token.IsIdentifier(s)
}
