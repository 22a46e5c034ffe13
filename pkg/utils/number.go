package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	// acima desse limite f*100 estoura e o valor já não tem casas decimais
	if math.Abs(f) > math.MaxFloat64/100 {
		return f
	}

	return math.Round(f*100) / 100
}

// ParseNumber converte células numéricas das planilhas. Remove separador de milhar e "$".
// Retorna ok=false para vazio, texto inválido, NaN ou infinito.
func ParseNumber(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}
