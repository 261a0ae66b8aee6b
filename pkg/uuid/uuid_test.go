package uuid

import (
	"encoding/json"
	"testing"
)

func TestNew(t *testing.T) {
	u, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if u[6]>>4 != 4 {
		t.Fatalf("version nibble must be 4, got %x", u[6]>>4)
	}
	if u[8]>>6 != 2 {
		t.Fatalf("variant bits must be 10, got %b", u[8]>>6)
	}

	s := u.String()
	if len(s) != 36 {
		t.Fatalf("canonical form must be 36 chars, got %d: %q", len(s), s)
	}
}

func TestParseRoundTrip(t *testing.T) {
	u, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	parsed, err := Parse(u.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed != u {
		t.Fatalf("round trip mismatch: %v vs %v", parsed, u)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "not-a-uuid", "00000000-0000-0000-0000", "zzzzzzzz-zzzz-4zzz-8zzz-zzzzzzzzzzzz"} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	u, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back UUID
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != u {
		t.Fatalf("json round trip mismatch: %v vs %v", back, u)
	}
}

func BenchmarkNew(b *testing.B) {
	for b.Loop() {
		if _, err := New(); err != nil {
			b.Fatal(err)
		}
	}
}
