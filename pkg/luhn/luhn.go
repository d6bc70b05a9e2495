// Package luhn implements the Luhn mod-10 checksum used by pilot
// certification numbers.
package luhn

import (
	"errors"
	"regexp"
)

// ErrInvalidCode is returned for input that is not at least two ASCII digits:
// one payload digit plus the check digit.
var ErrInvalidCode = errors.New("luhn codes must be at least two digits, digits only")

var digitsOnly = regexp.MustCompile(`^\d{2,}$`)

// IsValid reports whether code, check digit included, satisfies the checksum.
func IsValid(code string) (bool, error) {
	if !digitsOnly.MatchString(code) {
		return false, ErrInvalidCode
	}
	// The check digit sits in the last position, so doubling starts one to its left.
	return checksum(code, len(code)-2)%10 == 0, nil
}

// GenerateCheckDigit returns the digit that, appended to partial, yields a
// valid code.
func GenerateCheckDigit(partial string) (byte, error) {
	if partial == "" || !digitsOnly.MatchString(partial+"0") {
		return 0, ErrInvalidCode
	}
	// The check digit will be appended, so the last partial digit is doubled.
	sum := checksum(partial, len(partial)-1)
	return byte('0' + (10-sum%10)%10), nil
}

// Append returns partial followed by its check digit.
func Append(partial string) (string, error) {
	d, err := GenerateCheckDigit(partial)
	if err != nil {
		return "", err
	}
	return partial + string(d), nil
}

// checksum sums the digits of s, doubling every second digit walking left
// from index first and folding doubled values above 9.
func checksum(s string, first int) int {
	sum := 0
	for i := len(s) - 1; i >= 0; i-- {
		digit := int(s[i] - '0')
		if (first-i)%2 == 0 && i <= first {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	return sum
}
