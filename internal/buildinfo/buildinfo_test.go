package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	tests := []struct {
		version, commit, want string
	}{
		{"dev", "unknown", "dev"},
		{"dev", "1a2b3c4", "1a2b3c4"},
		{"v1.2.0", "1a2b3c4", "v1.2.0"},
		{"", "", "dev"},
	}
	for _, tc := range tests {
		Version, Commit = tc.version, tc.commit
		if got := Short(); got != tc.want {
			t.Errorf("Short() with %q/%q = %q, want %q", tc.version, tc.commit, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.0.0", "abc", "2024-01-02"
	if got, want := String(), "v1.0.0 (abc, 2024-01-02)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
