package utils

import "fmt"

// IsIn reports whether s is one of the strings in arr.
func IsIn(s string, arr []string) bool {
	for _, x := range arr {
		if s == x {
			return true
		}
	}
	return false
}

const errBurnInExceedsLimit = "burn-in %d exceeds the sample limit %d"

// ValidateBurnIn checks that the number of burn-in samples can be satisfied
// under the configured limit (0 = unlimited).
func ValidateBurnIn(burnIn, limit uint64) error {
	if limit > 0 && burnIn > limit {
		return fmt.Errorf(errBurnInExceedsLimit, burnIn, limit)
	}
	return nil
}
