package utils

import (
	"fmt"
	"strings"
	"time"
)

var sizeUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// FormatSize formats a byte count with binary prefixes and two decimals.
// A value stays in a unit up to and including 1024 of it.
// Examples:
//   - 3: "3.00B"
//   - 1024: "1024.00B"
//   - 1536: "1.50KiB"
func FormatSize(n int64) string {
	size := float64(n)
	for _, unit := range sizeUnits[:len(sizeUnits)-1] {
		if size <= 1024 {
			return fmt.Sprintf("%.2f%s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f%s", size, sizeUnits[len(sizeUnits)-1])
}

// Number formats large numbers with commas for readability.
// For example: 1234567 becomes "1,234,567"
func Number(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	var result []string
	for i, digit := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ",")
		}
		result = append(result, string(digit))
	}
	return strings.Join(result, "")
}

// Duration formats time duration in human-readable form.
// Examples:
//   - Less than 1 second: "0s"
//   - Less than 1 minute: "5.2s"
//   - Less than 1 hour: "3m5.2s"
//   - 1 hour or more: "2h15m"
func Duration(d time.Duration) string {
	if d < time.Second {
		return "0s"
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := d.Seconds() - float64(minutes*60)
		return fmt.Sprintf("%dm%.1fs", minutes, seconds)
	} else {
		hours := int(d.Hours())
		minutes := int(d.Minutes()) % 60
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
}
