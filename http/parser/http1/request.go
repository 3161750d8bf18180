package http1

// Header is a single header line, split into its name and value. Both of them are
// views over the buffer passed to the Parse, so they are valid only as long as the
// buffer itself is alive and untouched
type Header struct {
	Name  string
	Value []byte
}

// Request is a borrowed request view. Nothing in it is owned: Method, Path, Version and
// Body alias the parsed buffer, Headers is a slice of the header storage passed to the
// Parse. In order to keep the request after the buffer is reused, it must be converted
// into an owned one (see http.FromBorrowed)
type Request struct {
	Method  string
	Path    string
	Version string
	Headers []Header
	Body    []byte
}
