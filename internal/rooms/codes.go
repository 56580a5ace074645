package rooms

import "crypto/rand"

// Room codes are typed by hand on phones, so the alphabet drops the
// characters that look alike (0/O, 1/I). 32 characters divides 256 evenly,
// which keeps the byte-to-letter mapping unbiased.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codeLength      = 6
	maxCodeAttempts = 100
)

// generateCode draws random codes until one is absent from taken. With a
// 32^6 code space exhaustion only happens if the generator is broken, but
// the retry count is bounded so a bug cannot spin forever.
func generateCode(taken map[string]*Room) (string, error) {
	buf := make([]byte, codeLength)

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for i := range buf {
			buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
		}

		code := string(buf)
		if _, exists := taken[code]; !exists {
			return code, nil
		}
	}

	return "", ErrCodeSpaceExhausted
}
