package lib

import "fmt"

// Err wraps err as "op: err". A nil err stays nil.
func Err(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
