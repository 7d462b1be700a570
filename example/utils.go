package example

import "fmt"

// speedup formats the ratio a/b of two durations in seconds (how many times
// longer a took than b), guarding against a zero denominator from an
// unrealistically fast run.
func speedup(a, b float64) string {
	if b == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1fx", a/b)
}
