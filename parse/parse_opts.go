package parse

type parseOpts struct {
	comments bool
	filename string
}

type ParseOption func(*parseOpts)

// ParseComments controls whether comments are kept in the document model.
// The default is true.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParseFilename names the input in error messages.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}
