package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseFloat converts string to float64, returning ok=false when empty or malformed
func ParseFloat(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	return result, true
}
