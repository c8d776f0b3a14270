package contracts

import "fmt"

var (
	ErrUnknownLetter = fmt.Errorf("not a monthly contract letter")
)
