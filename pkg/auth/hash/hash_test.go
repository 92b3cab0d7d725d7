package hash

import "testing"

func TestHashAndVerify(t *testing.T) {
	h := New()
	hashed, err := h.Hash("correct horse battery")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hashed == "correct horse battery" {
		t.Fatal("password stored in the clear")
	}
	if !h.Verify("correct horse battery", hashed) {
		t.Error("correct password rejected")
	}
	if h.Verify("wrong password", hashed) {
		t.Error("wrong password accepted")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	h := New()
	a, err := h.Hash("same input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Hash("same input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ")
	}
}
