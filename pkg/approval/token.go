package approval

import "crypto/rand"

// tokenAlphabet is URL-safe: it survives callback-data encoding untouched.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// tokenLength gives ~84 bits of entropy over the 64-char alphabet.
const tokenLength = 14

// newCallbackToken generates an unguessable token for button callback data.
func newCallbackToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf), nil
}
