package sanitizer

import (
	"reflect"
	"testing"
)

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Deep Clean", "Deep Clean"},
		{"surrounding whitespace", "  Deep Clean  ", "Deep Clean"},
		{"internal runs", "Deep \t  Clean", "Deep Clean"},
		{"control characters", "Deep\x00Clean", "DeepClean"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrimAndNormalize_Idempotent(t *testing.T) {
	input := "  Move-out   clean \n"
	once := TrimAndNormalize(input)
	twice := TrimAndNormalize(once)
	if once != twice {
		t.Errorf("not idempotent: %q != %q", once, twice)
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone(" 555-1111 "); got != "555-1111" {
		t.Errorf("NormalizePhone = %q, want %q", got, "555-1111")
	}
	if got := NormalizePhone("+1 (555) 222 3333"); got != "+15552223333" {
		t.Errorf("NormalizePhone = %q, want %q", got, "+15552223333")
	}
}

func TestNormalizeServices(t *testing.T) {
	got := NormalizeServices([]string{" Window Washing ", "Window  Washing", "", "Oven"})
	want := []string{"Window Washing", "Oven"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeServices = %v, want %v", got, want)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail(" A@B.Com "); got != "a@b.com" {
		t.Errorf("NormalizeEmail = %q, want %q", got, "a@b.com")
	}
}
