package splitmix

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
