package requestgen

import (
	"strconv"
	"strings"
)

// Headers returns n header lines. The last one is always Host
func Headers(n int) (buff []byte) {
	for i := 0; i < n-1; i++ {
		buff = append(buff, "some-random-header-name-nobody-cares-about"+strconv.Itoa(i)+": "...)
		buff = append(buff, strings.Repeat("b", 100)+"\r\n"...)
	}

	if n > 0 {
		buff = append(buff, "Host: localhost\r\n"...)
	}

	return buff
}

// Generate returns a complete request with n headers. If the body isn't empty,
// Content-Length is added on top
func Generate(method, path string, n int, body string) (request []byte) {
	request = append(request, method+" "+path+" HTTP/1.1\r\n"...)
	request = append(request, Headers(n)...)

	if len(body) > 0 {
		request = append(request, "Content-Length: "+strconv.Itoa(len(body))+"\r\n"...)
	}

	request = append(request, '\r', '\n')

	return append(request, body...)
}
