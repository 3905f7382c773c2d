package service

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies salted one-way password digests. bcrypt embeds
// a fresh salt per call, so two hashes of the same plaintext never match
// byte-for-byte while both still verify.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash returns a salted digest of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A wrong
// password is not an error; it simply returns false.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
