package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const clientNumberPrefix = "C-"

// FormatClientNumber renders the human-readable client number, e.g. C-0007.
func FormatClientNumber(n int) string {
	return fmt.Sprintf("C-%04d", n)
}

// ParseClientNumber extracts the numeric suffix of a client number.
func ParseClientNumber(s string) (int, bool) {
	if !strings.HasPrefix(s, clientNumberPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(s[len(clientNumberPrefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// NextClientNumber allocates the number after the highest existing suffix.
func NextClientNumber(maxSuffix int) string {
	return FormatClientNumber(maxSuffix + 1)
}
