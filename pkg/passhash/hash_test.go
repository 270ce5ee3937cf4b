package passhash

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// Tests use the minimum cost; production strength is not the point here.
const testCost = bcrypt.MinCost

func TestHashAndVerify_RoundTrip(t *testing.T) {
	enc, err := HashPasswordWithCost("s3cret-password", testCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.HasPrefix(enc, "$2") {
		t.Fatalf("unexpected encoding prefix: %s", enc)
	}

	ok, err := VerifyPassword("s3cret-password", enc)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !ok {
		t.Fatal("correct password must verify")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	enc, err := HashPasswordWithCost("correct", testCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	ok, err := VerifyPassword("incorrect", enc)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if ok {
		t.Fatal("wrong password must not verify")
	}
}

func TestHash_SaltedNotDeterministic(t *testing.T) {
	a, _ := HashPasswordWithCost("same", testCost)
	b, _ := HashPasswordWithCost("same", testCost)
	if a == b {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
}

func TestHash_CostOutOfRange(t *testing.T) {
	if _, err := HashPasswordWithCost("whatever", bcrypt.MaxCost+1); err == nil {
		t.Fatal("out-of-range cost must be rejected")
	}
}

func TestVerify_MalformedEncodings(t *testing.T) {
	bad := []string{
		"",
		"plaintext",
		"$2a$nonsense",
	}
	for _, enc := range bad {
		if ok, err := VerifyPassword("whatever", enc); err == nil || ok {
			t.Fatalf("malformed encoding %q must fail verification", enc)
		}
	}
}
