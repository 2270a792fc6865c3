// Package document handles Brazilian taxpayer ids: CPF (individuals, 11
// digits) and CNPJ (companies, 14 digits).
package document

import "strings"

// Type is stored on the courier row as num_tipo.
type Type int

const (
	TypeCPF  Type = 0
	TypeCNPJ Type = 1
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

func (t Type) String() string {
	if t == TypeCPF {
		return "CPF"
	}
	return "CNPJ"
}

// Normalize strips every non-digit, so "123.456.789-09" becomes "12345678909".
func Normalize(doc string) string {
	var b strings.Builder
	b.Grow(len(doc))
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classify returns TypeCPF for exactly 11 digits and TypeCNPJ for anything
// else. It does not check the verification digits.
func Classify(doc string) Type {
	if len(Normalize(doc)) == cpfLength {
		return TypeCPF
	}
	return TypeCNPJ
}

// Valid reports whether doc is a CPF or a CNPJ with correct verification digits.
func Valid(doc string) bool {
	d := Normalize(doc)
	switch len(d) {
	case cpfLength:
		return ValidCPF(d)
	case cnpjLength:
		return ValidCNPJ(d)
	default:
		return false
	}
}

// ValidCPF checks the two mod-11 verification digits of a CPF.
func ValidCPF(cpf string) bool {
	d := Normalize(cpf)
	if len(d) != cpfLength {
		return false
	}
	digits := toInts(d)

	first := cpfDigit(digits[:9], 10)
	if first != digits[9] {
		return false
	}
	return cpfDigit(digits[:10], 11) == digits[10]
}

func cpfDigit(digits []int, startWeight int) int {
	sum := 0
	for i, v := range digits {
		sum += v * (startWeight - i)
	}
	rem := (sum * 10) % 11
	if rem == 10 {
		rem = 0
	}
	return rem
}

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidCNPJ checks the two weighted verification digits of a CNPJ.
func ValidCNPJ(cnpj string) bool {
	d := Normalize(cnpj)
	if len(d) != cnpjLength {
		return false
	}
	digits := toInts(d)

	if cnpjDigit(digits[:12], cnpjFirstWeights) != digits[12] {
		return false
	}
	return cnpjDigit(digits[:13], cnpjSecondWeights) == digits[13]
}

func cnpjDigit(digits, weights []int) int {
	sum := 0
	for i, v := range digits {
		sum += v * weights[i]
	}
	d := 11 - sum%11
	if d >= 10 {
		return 0
	}
	return d
}

func toInts(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i] - '0')
	}
	return out
}
