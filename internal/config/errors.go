package config

import "errors"

var (
	ErrRequired         = errors.New("required")
	ErrVersion          = errors.New("flag: version requested")
	ErrTooManyArguments = errors.New("too many arguments")
)
