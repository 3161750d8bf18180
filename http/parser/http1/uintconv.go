package http1

import (
	"math"

	"github.com/indigo-web/minihttp/errors"
)

// parseUint is a tiny implementation of strconv.Atoi, accepting only decimal digits.
// Sign, spaces and empty strings are rejected, as well as values overflowing int
func parseUint(raw string) (num int, err error) {
	if len(raw) == 0 {
		return 0, errors.ErrInvalidHeader
	}

	for i := 0; i < len(raw); i++ {
		char := raw[i] - '0'
		if char > 9 {
			return 0, errors.ErrInvalidHeader
		}

		if num > (math.MaxInt-int(char))/10 {
			return 0, errors.ErrInvalidHeader
		}

		num = num*10 + int(char)
	}

	return num, nil
}
