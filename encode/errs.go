package encode

import "errors"

var (
	ErrBadNamespace = errors.New("bad target namespace")
	ErrEncoding     = errors.New("encoding error")
)
