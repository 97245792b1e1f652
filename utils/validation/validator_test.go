package validation

import "testing"

type sampleForm struct {
	Email string `validate:"required,email"`
	Age   int    `validate:"required,gt=0"`
}

func TestValidateStruct(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateStruct(sampleForm{Email: "a@b.com", Age: 9}); err != nil {
		t.Errorf("valid struct failed: %v", err)
	}

	err := v.ValidateStruct(sampleForm{Email: "not-an-email", Age: -1})
	if err == nil {
		t.Fatal("invalid struct passed validation")
	}

	formatted := FormatValidationErrors(err)
	if formatted["email"] == "" {
		t.Error("email error missing from formatted output")
	}
	if formatted["age"] == "" {
		t.Error("age error missing from formatted output")
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"nul\x00byte", "nulbyte"},
		{"", ""},
		{"clean", "clean"},
	}

	for _, tt := range tests {
		if got := SanitizeString(tt.in); got != tt.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
