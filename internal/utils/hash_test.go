package utils

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("pw1secret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPassword(digest, "pw1secret") {
		t.Fatal("expected matching password to verify")
	}
}

func TestCheckPassword_SingleCharMutation(t *testing.T) {
	t.Parallel()

	const password = "pw1secret"
	digest, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	for i := range password {
		mutated := []byte(password)
		mutated[i] ^= 0x01
		if CheckPassword(digest, string(mutated)) {
			t.Fatalf("mutation at index %d verified against original digest", i)
		}
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	if CheckPassword("not-a-bcrypt-digest", "anything") {
		t.Fatal("malformed digest must never verify")
	}
}
