package luhn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"79927398713", true},
		{"79927398710", false},
		{"59", true},
		{"18", true},
		{"10", false},
		{"0000000", true},
		{"4539148803436467", true},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			got, err := IsValid(tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsValid_RejectsMalformedInput(t *testing.T) {
	for _, code := range []string{"", "5", "12a4", " 123", "12-34", "１２"} {
		t.Run(code, func(t *testing.T) {
			_, err := IsValid(code)
			assert.ErrorIs(t, err, ErrInvalidCode)
		})
	}
}

func TestGenerateCheckDigit(t *testing.T) {
	d, err := GenerateCheckDigit("7992739871")
	require.NoError(t, err)
	assert.Equal(t, byte('3'), d)

	// Sums that are already a multiple of ten must yield 0, not "10".
	d, err = GenerateCheckDigit("000000")
	require.NoError(t, err)
	assert.Equal(t, byte('0'), d)

	_, err = GenerateCheckDigit("")
	assert.ErrorIs(t, err, ErrInvalidCode)
	_, err = GenerateCheckDigit("12x")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestAppendAlwaysValid(t *testing.T) {
	partials := []string{"1", "5", "123456", "999999", "000001", "314159", strings.Repeat("9", 20)}
	for _, p := range partials {
		code, err := Append(p)
		require.NoError(t, err)
		ok, err := IsValid(code)
		require.NoError(t, err)
		assert.True(t, ok, "code %s should be valid", code)
	}
}

func FuzzAppend(f *testing.F) {
	f.Add("123456")
	f.Add("0")
	f.Add("7992739871")

	f.Fuzz(func(t *testing.T, partial string) {
		code, err := Append(partial)
		if err != nil {
			return
		}
		ok, err := IsValid(code)
		if err != nil || !ok {
			t.Fatalf("Append(%q) = %q is not valid (err=%v)", partial, code, err)
		}
	})
}
