package numeric

import (
	"errors"
	"math/big"
	"testing"
)

func TestStringToInteger(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr error
	}{
		{"0", 0, nil},
		{"42", 42, nil},
		{"007", 7, nil},
		{"9223372036854775807", 9223372036854775807, nil},
		{"9223372036854775808", 0, ErrOutOfRange},
		{"123456789012345678901234567890", 0, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := StringToInteger(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestStringToIntegerRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "-1", "1_000", "0x10", "12a"} {
		if _, err := StringToInteger(input); err == nil {
			t.Errorf("Expected error for %q", input)
		} else if errors.Is(err, ErrOutOfRange) {
			t.Errorf("Expected a format error for %q, got %v", input, err)
		}
	}
}

func TestFitsInBitSize(t *testing.T) {
	tests := []struct {
		value   int64
		bits    int
		signed  bool
		expects bool
	}{
		{127, 8, true, true},
		{128, 8, true, false},
		{-128, 8, true, true},
		{-129, 8, true, false},
		{255, 8, false, true},
		{256, 8, false, false},
		{-1, 8, false, false},
	}

	for _, tt := range tests {
		if got := FitsInBitSize(big.NewInt(tt.value), tt.bits, tt.signed); got != tt.expects {
			t.Errorf("FitsInBitSize(%d, %d, %v): expected %v, got %v", tt.value, tt.bits, tt.signed, tt.expects, got)
		}
	}
}

func TestStringToNegatedInteger(t *testing.T) {
	if got, err := StringToNegatedInteger("9223372036854775808"); err != nil || got != -9223372036854775808 {
		t.Errorf("Expected int64 minimum, got %d (%v)", got, err)
	}
	if got, err := StringToNegatedInteger("5"); err != nil || got != -5 {
		t.Errorf("Expected -5, got %d (%v)", got, err)
	}
	if _, err := StringToNegatedInteger("9223372036854775809"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
}
