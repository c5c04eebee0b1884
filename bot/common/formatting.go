package common

import (
	"fmt"
)

// FormatPushups renders a signed pushup count with its unit
func FormatPushups(amount int64) string {
	if amount == 1 || amount == -1 {
		return fmt.Sprintf("%d push-up", amount)
	}
	return fmt.Sprintf("%d push-ups", amount)
}

// FormatNetBalance renders a net standing sentence fragment. Positive means
// behind, negative means ahead of schedule.
func FormatNetBalance(net int64) string {
	return fmt.Sprintf("your balance is **%s**", FormatPushups(net))
}
