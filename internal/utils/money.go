package utils

import (
	"fmt"
	"strconv"
)

// FormatINR renders a whole-rupee amount with the Indian digit grouping
// used on tickets, e.g. 1904 -> "₹1,904" and 1234567 -> "₹12,34,567".
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₹%s", sign, groupIndian(amount))
}

// groupIndian applies 3-then-2 grouping from the right.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	out := s[len(s)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}
