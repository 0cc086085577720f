package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor for new digests.
const Cost = 10

// MaxBytes is the longest input bcrypt looks at. Longer passwords are cut to this length
// before hashing and verifying, so they are accepted rather than rejected.
const MaxBytes = 72

func truncate(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > MaxBytes {
		b = b[:MaxBytes]
	}
	return b
}

// Hash returns a salted bcrypt digest of plaintext. Two calls with the same input never return
// the same digest.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(truncate(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether digest was produced from plaintext. Malformed digests are a mismatch.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), truncate(plaintext)) == nil
}
