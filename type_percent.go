package tradejournal

import "fmt"

// Percent is a percentage, 50 meaning one half.
type Percent float64

// ratio returns n/total as a Percent, 0 when total is 0.
func ratio(n, total int) Percent {
	if total == 0 {
		return 0
	}
	return Percent(100 * float64(n) / float64(total))
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}
