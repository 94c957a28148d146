package usermap

import "testing"

func TestFNV1a(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{in: "", want: 0x811c9dc5},
		{in: "a", want: 0xe40c292c},
		{in: "foobar", want: 0xbf9cf968},
	}
	for _, tt := range tests {
		if got := FNV1a(tt.in); got != tt.want {
			t.Errorf("FNV1a(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestXXHash(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{in: "", want: 0xef46db3751d8e999},
		{in: "a", want: 0xd24ec4f1a98c6e5b},
		{in: "abc", want: 0x44bc2cf5ad770999},
	}
	for _, tt := range tests {
		if got := XXHash(tt.in); got != tt.want {
			t.Errorf("XXHash(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestFNV1a_HomeSlots(t *testing.T) {
	// Fixtures in table_test.go rely on these placements.
	homes := map[string]uint64{
		"Spiderkid423": 7,
		"alice":        7,
		"himmy":        3,
		"user9":        1,
		"user12":       1,
	}
	for name, want := range homes {
		if got := FNV1a(name) % 8; got != want {
			t.Errorf("FNV1a(%q) %% 8 = %d, want %d", name, got, want)
		}
	}
	if FNV1a("user9")%16 != FNV1a("user12")%16 {
		t.Errorf("user9 and user12 must share a home slot at capacity 16")
	}
}
