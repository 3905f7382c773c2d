package service

import "testing"

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher()

	digest, err := h.Hash("p1secret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest == "p1secret" {
		t.Fatalf("digest must not equal plaintext")
	}

	if !h.Verify("p1secret", digest) {
		t.Fatalf("correct password should verify")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("wrong password should not verify")
	}
}

func TestHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewHasher()

	first, err := h.Hash("p1secret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("p1secret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same plaintext should differ")
	}
	if !h.Verify("p1secret", first) || !h.Verify("p1secret", second) {
		t.Fatalf("both digests should verify against the plaintext")
	}
}
