package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestDigest_Deterministic(t *testing.T) {
	d1 := Digest("Azeem423", "ABCDE")
	d2 := Digest("Azeem423", "ABCDE")

	if !bytes.Equal(d1, d2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	// snapshot of BLAKE2b-256("Azeem423ABCDE")
	expectedHex := "6ddef6f209d6d1a59e8777f757cf541618d7c6f0e3331405067887bd3370b119"
	if hex.EncodeToString(d1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(d1))
	}
}

func TestDigest_Empty(t *testing.T) {
	expectedHex := "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	if got := hex.EncodeToString(Digest("", "")); got != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, got)
	}
}

func TestDigest_Size(t *testing.T) {
	if n := len(Digest("secret", "SALT1")); n != DigestSize {
		t.Fatalf("expected %d bytes, got %d", DigestSize, n)
	}
}

func TestDigest_DifferentSalts(t *testing.T) {
	d1 := Digest("secret-password", "AAAAA")
	d2 := Digest("secret-password", "BBBBB")

	if bytes.Equal(d1, d2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestEqual(t *testing.T) {
	d := Digest("pw", "SALT1")

	tests := []struct {
		name      string
		candidate []byte
		want      bool
	}{
		{name: "same digest", candidate: Digest("pw", "SALT1"), want: true},
		{name: "wrong secret", candidate: Digest("pw2", "SALT1"), want: false},
		{name: "wrong salt", candidate: Digest("pw", "SALT2"), want: false},
		{name: "truncated", candidate: d[:8], want: false},
		{name: "nil", candidate: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(d, tt.candidate); got != tt.want {
				t.Fatalf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
