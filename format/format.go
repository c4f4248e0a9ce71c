package format

import "fmt"

const (
	thousand = 1000
	million  = thousand * 1000
)

// HumanNumber renders large counts (register file slots, thread counts) with
// a K/M suffix.
func HumanNumber(n uint64) string {
	switch {
	case n >= million:
		return fmt.Sprintf("%sM", decimalPlace(float64(n)/million))
	case n >= thousand:
		return fmt.Sprintf("%sK", decimalPlace(float64(n)/thousand))
	default:
		return fmt.Sprintf("%d", n)
	}
}

func decimalPlace(number float64) string {
	switch {
	case number >= 100:
		return fmt.Sprintf("%.0f", number)
	case number >= 10:
		return fmt.Sprintf("%.1f", number)
	default:
		return fmt.Sprintf("%.2f", number)
	}
}
