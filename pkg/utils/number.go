package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CentsToBRL converte centavos (como armazenado no banco) para reais.
// Toda exibição monetária passa por aqui antes de formatar.
func CentsToBRL(cents int64) float64 {
	return float64(cents) / 100
}

// BRLToCents converte reais para centavos antes de persistir. O
// arredondamento garante o round-trip exato (1500.00 -> 150000).
func BRLToCents(value float64) int64 {
	return int64(math.Round(value * 100))
}
