package validators

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// IsValidCPF
// ─────────────────────────────────────────────

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "plain digits", candidate: "52998224725", want: true},
		{name: "formatted", candidate: "529.982.247-25", want: true},
		{name: "spaces around and inside", candidate: " 529 982 247 25 ", want: true},
		{name: "another valid number", candidate: "111.444.777-35", want: true},
		{name: "first check digit is zero", candidate: "10000000108", want: true},
		{name: "second check digit is zero", candidate: "12345600110", want: true},
		{name: "leading zeros", candidate: "000.000.001-91", want: true},
		{name: "letters are stripped", candidate: "abc52998224725xyz", want: true},
		{name: "unicode noise is stripped", candidate: "CPF№ 529•982•247–25 ✓", want: true},
		{name: "wrong second check digit", candidate: "52998224726", want: false},
		{name: "wrong first check digit", candidate: "52998224735", want: false},
		{name: "both check digits swapped", candidate: "52998224752", want: false},
		{name: "empty", candidate: "", want: false},
		{name: "only punctuation", candidate: "...-", want: false},
		{name: "too short", candidate: "123", want: false},
		{name: "ten digits", candidate: "5299822472", want: false},
		{name: "twelve digits", candidate: "123456789012", want: false},
		{name: "valid number with extra digit", candidate: "529982247250", want: false},
		{name: "non-ascii digits are not digits", candidate: "٥٢٩٩٨٢٢٤٧٢٥", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCPF(tt.candidate))
		})
	}
}

func TestIsValidCPF_RepeatedDigitsAreRejected(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		candidate := strings.Repeat(string(d), 11)
		t.Run(candidate, func(t *testing.T) {
			assert.False(t, IsValidCPF(candidate))
		})
	}
}

func TestIsValidCPF_RepeatedDigitsFormatted(t *testing.T) {
	assert.False(t, IsValidCPF("111.111.111-11"))
}

func TestIsValidCPF_FormatInsensitive(t *testing.T) {
	assert.Equal(t, IsValidCPF("52998224725"), IsValidCPF("529.982.247-25"))
	assert.Equal(t, IsValidCPF("52998224726"), IsValidCPF("529.982.247-26"))
}

func TestIsValidCPF_Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		require.True(t, IsValidCPF("52998224725"))
		require.False(t, IsValidCPF("52998224726"))
	}
}

func TestIsValidCPF_ConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 64)

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if !IsValidCPF("529.982.247-25") {
				errs <- fmt.Sprintf("goroutine %d: valid cpf rejected", i)
			}
			if IsValidCPF("11111111111") {
				errs <- fmt.Sprintf("goroutine %d: repeated digits accepted", i)
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}

// Every single-digit mutation of a valid CPF must be caught by one of the
// two check digits.
func TestIsValidCPF_SingleDigitMutationsAreRejected(t *testing.T) {
	const valid = "52998224725"

	for pos := 0; pos < len(valid); pos++ {
		for d := byte('0'); d <= '9'; d++ {
			if valid[pos] == d {
				continue
			}
			mutated := valid[:pos] + string(d) + valid[pos+1:]
			assert.False(t, IsValidCPF(mutated), "mutation %s accepted", mutated)
		}
	}
}

// ─────────────────────────────────────────────
// NormalizeCPF
// ─────────────────────────────────────────────

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "529.982.247-25", want: "52998224725"},
		{in: "52998224725", want: "52998224725"},
		{in: "abc1x2y3", want: "123"},
		{in: "", want: ""},
		{in: "no digits here", want: ""},
		{in: "١٢٣ 456", want: "456"},
		{in: "\x00\xff7", want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCPF(tt.in))
		})
	}
}

// ─────────────────────────────────────────────
// CPFCheckDigit
// ─────────────────────────────────────────────

func TestCPFCheckDigit(t *testing.T) {
	// 5*10 + 2*9 + 9*8 + 9*7 + 8*6 + 2*5 + 2*4 + 4*3 + 7*2 = 295, 295 % 11 = 9
	assert.Equal(t, 2, CPFCheckDigit("52998224725", 9))
	// the second digit includes the first one: 347 % 11 = 6
	assert.Equal(t, 5, CPFCheckDigit("52998224725", 10))
}

func TestCPFCheckDigit_RemainderBelowTwoIsZero(t *testing.T) {
	// "100000001": 1*10 + 1*2 = 12, 12 % 11 = 1
	assert.Equal(t, 0, CPFCheckDigit("10000000108", 9))
	assert.Equal(t, 0, CPFCheckDigit("12345600110", 10))
}

func TestCPFCheckDigit_PositionBeyondInput(t *testing.T) {
	assert.NotPanics(t, func() {
		CPFCheckDigit("123", 9)
	})
}

// ─────────────────────────────────────────────
// FormatCPF
// ─────────────────────────────────────────────

func TestFormatCPF(t *testing.T) {
	formatted, ok := FormatCPF("52998224725")
	require.True(t, ok)
	assert.Equal(t, "529.982.247-25", formatted)

	formatted, ok = FormatCPF(" 529-982-247.25 ")
	require.True(t, ok)
	assert.Equal(t, "529.982.247-25", formatted)
}

func TestFormatCPF_Invalid(t *testing.T) {
	formatted, ok := FormatCPF("52998224726")

	assert.False(t, ok)
	assert.Empty(t, formatted)
}
