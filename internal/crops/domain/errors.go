package domain

import "errors"

var ErrIncompleteCrop = errors.New("crop needs a name, a type and a season")
