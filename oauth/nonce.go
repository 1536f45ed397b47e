package oauth

import "math/rand/v2"

const (
	nonceChars  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	nonceLength = 6
)

// NewNonce returns a random 6-character alphanumeric nonce.
func NewNonce() string {
	b := make([]byte, nonceLength)
	for i := range b {
		b[i] = nonceChars[rand.IntN(len(nonceChars))]
	}
	return string(b)
}
