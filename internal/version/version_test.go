package version

import (
	"strings"
	"testing"
)

func TestStringUsesInjectedValues(t *testing.T) {
	got := String("v0.3.0", "deadbeef", "2026-08-01T00:00:00Z")
	if got != "v0.3.0 (deadbeef) 2026-08-01T00:00:00Z" {
		t.Fatalf("version string = %q", got)
	}
}

func TestStringOmitsPlaceholders(t *testing.T) {
	got := String("v0.3.0", "unknown", "unknown")
	if got != "v0.3.0" {
		t.Fatalf("version string = %q", got)
	}
}

func TestStringDefaultsToDev(t *testing.T) {
	got := String("", "unknown", "unknown")
	if got == "" || strings.Contains(got, "unknown") {
		t.Fatalf("version string = %q", got)
	}
}
