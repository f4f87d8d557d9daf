package chart

import "errors"

var (
	ErrBadConfig = errors.New("bad chart config")
)
