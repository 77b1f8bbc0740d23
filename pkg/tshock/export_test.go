package tshock

import "net/url"

// This file is only for test purpose and is only loaded by test framework.

// Encode exposes the query encoding of p for test purpose.
func Encode(p Params, token string) (url.Values, error) {
	return p.encode(token)
}
