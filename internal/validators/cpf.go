// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "strings"

// cpfLength is the number of digits in a normalized CPF, check digits included.
const cpfLength = 11

// Positions of the two check digits inside a normalized CPF.
const (
	firstCheckDigitPosition  = 9
	secondCheckDigitPosition = 10
)

// IsValidCPF reports whether candidate is a structurally and arithmetically
// valid CPF.
//
// The candidate is normalized with [NormalizeCPF] first, so "529.982.247-25"
// and "52998224725" give the same answer. A candidate is valid only when:
//   - it has exactly 11 digits after normalization;
//   - the digits are not all the same ("00000000000" ... "99999999999");
//   - digit 9 equals [CPFCheckDigit] over digits 0-8;
//   - digit 10 equals [CPFCheckDigit] over digits 0-9.
//
// Checks run in that order and stop at the first failure. IsValidCPF is pure
// and never panics, whatever the input.
func IsValidCPF(candidate string) bool {
	digits := NormalizeCPF(candidate)

	if len(digits) != cpfLength {
		return false
	}

	if hasAllSameDigits(digits) {
		return false
	}

	if CPFCheckDigit(digits, firstCheckDigitPosition) != digitAt(digits, firstCheckDigitPosition) {
		return false
	}

	return CPFCheckDigit(digits, secondCheckDigitPosition) == digitAt(digits, secondCheckDigitPosition)
}

// NormalizeCPF keeps the ASCII digits of candidate in their original order
// and drops every other character, letters included.
func NormalizeCPF(candidate string) string {
	var sb strings.Builder
	sb.Grow(cpfLength)

	for i := 0; i < len(candidate); i++ {
		if c := candidate[i]; c >= '0' && c <= '9' {
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// CPFCheckDigit computes the check digit expected at position from the
// digits before it.
//
// The first digit is weighted position+1 and each following one a weight
// lower, down to 2. With remainder = sum % 11 the check digit is 0 when the
// remainder is below 2 and 11-remainder otherwise.
//
// digits must contain only ASCII digits and position must not exceed
// len(digits); a shorter prefix is weighted as far as it goes.
func CPFCheckDigit(digits string, position int) int {
	if position > len(digits) {
		position = len(digits)
	}

	sum := 0
	weight := position + 1
	for i := 0; i < position; i++ {
		sum += digitAt(digits, i) * weight
		weight--
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}

	return 11 - remainder
}

// FormatCPF renders a valid candidate in the canonical XXX.XXX.XXX-XX layout.
// The second return value is false, and the string empty, when candidate is
// not a valid CPF.
func FormatCPF(candidate string) (string, bool) {
	if !IsValidCPF(candidate) {
		return "", false
	}

	d := NormalizeCPF(candidate)
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11], true
}

func hasAllSameDigits(digits string) bool {
	return strings.Count(digits, digits[:1]) == len(digits)
}

func digitAt(digits string, i int) int {
	return int(digits[i] - '0')
}
