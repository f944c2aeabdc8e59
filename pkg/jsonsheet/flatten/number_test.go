package flatten

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "1"},
		{"-12", "-12"},
		{"-0", "0"},
		{"12345678901234567890", "12345678901234567890"},
		{"0.9", "0.9"},
		{"1.10", "1.1"},
		{"1.0", "1.0"},
		{"1e5", "100000.0"},
		{"-12e3", "-12000.0"},
		{"2.5E-3", "0.0025"},
		{"0.0001", "0.0001"},
		{"0.00001", "1e-05"},
		{"1.5e-7", "1.5e-07"},
		{"1e15", "1000000000000000.0"},
		{"1e16", "1e+16"},
		{"1.25e300", "1.25e+300"},
		{"0.0", "0.0"},
		{"-0.0", "-0.0"},
		{"1e400", "inf"},
		{"-1e400", "-inf"},
	}

	for _, tt := range tests {
		result := formatNumber(tt.input)
		if result != tt.expected {
			t.Errorf("formatNumber(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
