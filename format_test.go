package ibangen

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NL91ABNA0417164300", "NL91 ABNA 0417 1643 00"},
		{"GB82WEST12345698765432", "GB82 WEST 1234 5698 7654 32"},
		{"ABCD", "ABCD"},
		{"ABCDE", "ABCD E"},
		{"AB", "AB"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
