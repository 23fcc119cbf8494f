package app

import "errors"

var ErrIncompleteApp = errors.New("incomplete app dependencies")
