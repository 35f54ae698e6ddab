package requestutil

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestIDKeepsValid(t *testing.T) {
	if got := SanitizeRequestID("abc-123_XYZ"); got != "abc-123_XYZ" {
		t.Fatalf("got %q", got)
	}
}

func TestSanitizeRequestIDReplacesInvalid(t *testing.T) {
	for _, bad := range []string{"", "has space", "semi;colon", string(make([]byte, 65))} {
		got := SanitizeRequestID(bad)
		if got == bad || got == "" {
			t.Fatalf("SanitizeRequestID(%q) = %q", bad, got)
		}
	}
}

func TestNewRequestIDUnique(t *testing.T) {
	if NewRequestID() == NewRequestID() {
		t.Fatal("expected distinct ids")
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(r); got != "10.0.0.1:1234" {
		t.Fatalf("got %q", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Fatalf("got %q", got)
	}
}
