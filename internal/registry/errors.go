package registry

import "errors"

var ErrEmptyClassName = errors.New("class name must not be empty")
