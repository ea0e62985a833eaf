package utils

import (
	"math"
	"strconv"
	"strings"
)

// thousandsSeparators aparecem em exportações formatadas para leitura humana
var thousandsSeparators = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "")

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// NullIfEmpty normaliza células vazias para nil
func NullIfEmpty(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// ParseInteger converte contagens e valores inteiros. Valores com parte
// decimal zerada ("15,0") são aceitos. Falhas resultam em nil.
func ParseInteger(value string) *int64 {
	value = thousandsSeparators.Replace(strings.TrimSpace(value))
	if value == "" {
		return nil
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return &n
	}

	// "15,0" é convertido pela parte inteira, sem passar por float64
	if whole, fraction, found := strings.Cut(strings.Replace(value, ",", ".", 1), "."); found && whole != "" && strings.Trim(fraction, "0") == "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return nil
		}
		return &n
	}

	// float64(math.MaxInt64) arredonda para 2^63, então o limite é comparado em potência de dois
	f := ParseDecimal(value)
	if f == nil || *f != math.Trunc(*f) || *f >= 0x1p63 || *f < -0x1p63 {
		return nil
	}

	n := int64(*f)
	return &n
}

// ParseDecimal converte percentuais que usam vírgula como separador decimal.
// O sufixo "%" é ignorado. Falhas resultam em nil.
func ParseDecimal(value string) *float64 {
	value = thousandsSeparators.Replace(strings.TrimSpace(value))
	value = strings.TrimSuffix(value, "%")
	if value == "" {
		return nil
	}

	value = strings.Replace(value, ",", ".", 1)

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return &f
}
