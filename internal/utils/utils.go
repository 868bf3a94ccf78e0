package utils

import (
	"fmt"
	"strconv"
)

// ParseIndex converts a 1-based CLI index into a 0-based one.
func ParseIndex(arg, what string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return 0, fmt.Errorf("Invalid %s index (should be 1-based)", what)
	}
	return idx - 1, nil
}
