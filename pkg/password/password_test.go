package password

import "testing"

func TestHashVerifyRoundtrip(t *testing.T) {
	h, err := NewHasher(MinCost)
	if err != nil {
		t.Fatalf("NewHasher: %v", err)
	}
	hashed, err := h.Hash("Abc12345")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if string(hashed) == "Abc12345" {
		t.Fatal("hash must not equal plaintext")
	}
	if !h.Verify("Abc12345", hashed) {
		t.Fatal("expected correct password to verify")
	}
	if h.Verify("Abc12346", hashed) {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestVerifyGarbageHash(t *testing.T) {
	h, _ := NewHasher(MinCost)
	if h.Verify("whatever", []byte("not-a-bcrypt-hash")) {
		t.Fatal("garbage hash must not verify")
	}
}

func TestNewHasherRejectsWeakCost(t *testing.T) {
	if _, err := NewHasher(4); err == nil {
		t.Fatal("expected error for cost below minimum")
	}
}
