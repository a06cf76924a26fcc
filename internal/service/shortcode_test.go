package service

import (
	"strings"
	"testing"
)

func TestGenerateShortCode_Length(t *testing.T) {
	for _, n := range []int{1, 8, 20} {
		code, err := GenerateShortCode(n)
		if err != nil {
			t.Fatalf("generate(%d): %v", n, err)
		}
		if len(code) != n {
			t.Errorf("generate(%d): got length %d", n, len(code))
		}
	}
}

func TestGenerateShortCode_Alphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateShortCode(8)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		for _, r := range code {
			if !strings.ContainsRune(shortCodeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
	}
}

func TestGenerateShortCode_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := GenerateShortCode(8)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q after %d draws", code, i)
		}
		seen[code] = true
	}
}

func TestValidateCustomShortCode(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"my-code", false},
		{"abc", false},
		{"ABC_123-xyz", false},
		{"ab", true},                        // too short
		{strings.Repeat("a", 21), true},     // too long
		{"has space", true},                 // bad charset
		{"héllo", true},                     // bad charset
		{"auth", true},                      // reserved
		{"URLS", true},                      // reserved, case-insensitive
	}

	for _, tt := range tests {
		err := validateCustomShortCode(tt.code)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateCustomShortCode(%q) = %v, wantErr %v", tt.code, err, tt.wantErr)
		}
	}
}
