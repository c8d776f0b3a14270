package expiry

import "fmt"

var (
	ErrInvalidDate = fmt.Errorf("invalid calendar date")
)
