package cpf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid plain", input: "12345678909", want: true},
		{name: "valid formatted", input: "123.456.789-09", want: true},
		{name: "valid with stray characters", input: " 123 456 789 09 ", want: true},
		{name: "another valid", input: "111.444.777-35", want: true},
		{name: "yet another valid", input: "529.982.247-25", want: true},
		{name: "wrong first check digit", input: "12345678919", want: false},
		{name: "wrong second check digit", input: "12345678900", want: false},
		{name: "too short", input: "1234567890", want: false},
		{name: "too long", input: "123456789091", want: false},
		{name: "empty", input: "", want: false},
		{name: "no digits at all", input: "abc.def.ghi-jk", want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Valid(tc.input))
		})
	}
}

func TestValidRejectsRepeatedDigits(t *testing.T) {
	t.Parallel()

	for d := '0'; d <= '9'; d++ {
		input := strings.Repeat(string(d), 11)
		assert.False(t, Valid(input), "repeated digit %q must be rejected", input)
	}
}

// For any 9-digit prefix there is exactly one pair of check digits that
// validates; every other pair must fail.
func TestValidCheckDigitsAreUnique(t *testing.T) {
	t.Parallel()

	prefixes := []string{"123456789", "529982247", "000000001"}

	for _, prefix := range prefixes {
		validPairs := 0
		for d9 := 0; d9 <= 9; d9++ {
			for d10 := 0; d10 <= 9; d10++ {
				candidate := fmt.Sprintf("%s%d%d", prefix, d9, d10)
				if Valid(candidate) {
					validPairs++
				}
			}
		}
		assert.Equal(t, 1, validPairs, "prefix %s", prefix)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "full number", input: "12345678901", want: "123.456.789-01"},
		{name: "already formatted", input: "123.456.789-01", want: "123.456.789-01"},
		{name: "partial three digits", input: "123", want: "123"},
		{name: "partial four digits", input: "1234", want: "123.4"},
		{name: "partial seven digits", input: "1234567", want: "123.456.7"},
		{name: "partial ten digits", input: "1234567890", want: "123.456.789-0"},
		{name: "extra digits truncated", input: "123456789012345", want: "123.456.789-01"},
		{name: "mixed garbage", input: "a1b2c3-4.5 6789x01", want: "123.456.789-01"},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"12345678901", "123", "1234567", "529.982.247-25", "9"}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}
