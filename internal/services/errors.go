package services

import "fmt"

var (
	ErrBadRequest = fmt.Errorf("bad request")
)
