// Package cpf validates and formats the CPF, the Brazilian 11-digit tax
// identifier whose last two digits are check digits over mod-11 weighted sums.
package cpf

import "strings"

const length = 11

// Digits strips everything but decimal digits from raw.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize renders raw in the canonical NNN.NNN.NNN-NN form. Partial input
// is masked progressively, so the result tracks whatever has been typed so
// far; anything past 11 digits is dropped.
func Normalize(raw string) string {
	digits := Digits(raw)
	if len(digits) > length {
		digits = digits[:length]
	}

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// Valid reports whether raw carries a well-formed CPF: exactly 11 digits,
// not a single digit repeated, and both check digits matching their weighted
// sums. Formatting characters are ignored.
func Valid(raw string) bool {
	digits := Digits(raw)
	if len(digits) != length || allSame(digits) {
		return false
	}
	return checkDigit(digits, 9) && checkDigit(digits, 10)
}

// checkDigit verifies the digit at pos against the weighted sum of the digits
// before it. Digit i weighs (pos+1-i); the remainder of sum*10 mod 11 maps
// 10 and 11 to 0.
func checkDigit(digits string, pos int) bool {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(digits[i]-'0') * (pos + 1 - i)
	}

	rest := (sum * 10) % 11
	if rest == 10 || rest == 11 {
		rest = 0
	}

	return rest == int(digits[pos]-'0')
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
