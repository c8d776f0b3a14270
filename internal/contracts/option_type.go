package contracts

type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)
