package scan

import "testing"

func TestNormalizeScan(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID int64
		wantOK bool
	}{
		{name: "plain digits", input: "123", wantID: 123, wantOK: true},
		{name: "surrounding whitespace", input: "  42\n", wantID: 42, wantOK: true},
		{name: "embedded separators", input: "12-34", wantID: 1234, wantOK: true},
		{name: "label prefix", input: "ID: 0042", wantID: 42, wantOK: true},
		{name: "decimal point dropped", input: "12.5", wantID: 125, wantOK: true},
		{name: "zero", input: "0", wantID: 0, wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "letters only", input: "abc", wantOK: false},
		{name: "punctuation only", input: "--", wantOK: false},
		{name: "overflows int64", input: "92233720368547758089", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := NormalizeScan(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeScan(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && id != tt.wantID {
				t.Errorf("NormalizeScan(%q) = %d, want %d", tt.input, id, tt.wantID)
			}
		})
	}
}
