package auth

import (
	"strings"
	"testing"
)

func TestTruncatePasswordShortUnchanged(t *testing.T) {
	for _, p := range []string{"", "short", strings.Repeat("a", 72)} {
		if got := TruncatePassword(p); got != p {
			t.Errorf("TruncatePassword(%q) = %q, want unchanged", p, got)
		}
	}
}

func TestTruncatePasswordCapsAt72Bytes(t *testing.T) {
	long := strings.Repeat("a", 100)
	got := TruncatePassword(long)
	if len(got) != 72 {
		t.Errorf("truncated length = %d, want 72", len(got))
	}
	if !strings.HasPrefix(long, got) {
		t.Error("truncated password is not a prefix of the original")
	}
}

func TestTruncatePasswordNeverSplitsRune(t *testing.T) {
	// Naive byte slicing at 72 would cut one of these 2-byte runes in half
	long := strings.Repeat("ع", 40) // 80 bytes
	got := TruncatePassword(long)
	if len(got) > 72 {
		t.Fatalf("truncated length = %d, want <= 72", len(got))
	}
	for _, r := range got {
		if r == '�' {
			t.Fatal("truncation produced an invalid rune")
		}
	}

	long = strings.Repeat("م", 30) // 60 bytes
	long += strings.Repeat("x", 20)
	got = TruncatePassword(long)
	if len(got) > 72 {
		t.Fatalf("truncated length = %d, want <= 72", len(got))
	}
}

func TestHashPasswordRejectsShort(t *testing.T) {
	if _, err := HashPassword("1234567"); err != ErrPasswordTooShort {
		t.Errorf("HashPassword(short) error = %v, want ErrPasswordTooShort", err)
	}
}

func TestHashAndVerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if err := VerifyPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("VerifyPassword(correct) = %v, want nil", err)
	}
	if err := VerifyPassword(hash, "wrong password"); err != ErrPasswordMismatch {
		t.Errorf("VerifyPassword(wrong) = %v, want ErrPasswordMismatch", err)
	}
}

func TestOverlongPasswordsVerifySymmetrically(t *testing.T) {
	// Both sides truncate, so a 100-byte password still verifies against
	// the hash of its own 72-byte prefix
	long := strings.Repeat("b", 100)
	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := VerifyPassword(hash, long); err != nil {
		t.Errorf("VerifyPassword(same long password) = %v, want nil", err)
	}
}

func TestGenerateTempPasswordLength(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		p := GenerateTempPassword()
		if len(p) < MinPasswordLength {
			t.Fatalf("temp password %q shorter than minimum", p)
		}
		seen[p] = true
	}
	if len(seen) < 10 {
		t.Error("temp passwords are not unique")
	}

	if _, err := HashPassword(GenerateTempPassword()); err != nil {
		t.Fatalf("temp password not hashable: %v", err)
	}
}
