package http1

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/minihttp/errors"
	"github.com/indigo-web/utils/uf"
)

var crlf = []byte("\r\n")

// Parse scans a single request from the data. The headers are stored into the storage,
// which length is the maximal number of headers the request may have. Returned number is
// the count of bytes the request occupies in the data: the headers section plus the body
// declared by Content-Length. Everything after it is left untouched.
//
// The parser keeps no state between calls. If the data doesn't contain the whole request,
// errors.ErrPartial is returned and the caller must call Parse again with the same data
// extended by newly received bytes.
func Parse(data []byte, storage []Header) (request Request, n int, err error) {
	lineEnd := bytes.Index(data, crlf)
	if lineEnd == -1 {
		return request, 0, errors.ErrPartial
	}

	methodValue, pathValue, versionValue, err := splitRequestLine(data[:lineEnd])
	if err != nil {
		return request, 0, err
	}

	offset := lineEnd + len(crlf)
	headersNumber := 0

	for {
		lineEnd = bytes.Index(data[offset:], crlf)
		if lineEnd == -1 {
			return request, 0, errors.ErrPartial
		}

		if lineEnd == 0 {
			offset += len(crlf)
			break
		}

		if headersNumber >= len(storage) {
			return request, 0, errors.ErrTooManyHeaders
		}

		header, err := parseHeader(data[offset : offset+lineEnd])
		if err != nil {
			return request, 0, err
		}

		storage[headersNumber] = header
		headersNumber++
		offset += lineEnd + len(crlf)
	}

	headers := storage[:headersNumber]
	contentLength, err := findContentLength(headers)
	if err != nil {
		return request, 0, err
	}

	if contentLength > len(data)-offset {
		return request, 0, errors.ErrPartial
	}

	end := offset + contentLength

	switch {
	case !utf8.Valid(methodValue):
		return request, 0, errors.ErrInvalidMethod
	case !utf8.Valid(pathValue):
		return request, 0, errors.ErrInvalidPath
	case !utf8.Valid(versionValue):
		return request, 0, errors.ErrInvalidVersion
	}

	return Request{
		Method:  uf.B2S(methodValue),
		Path:    uf.B2S(pathValue),
		Version: uf.B2S(versionValue),
		Headers: headers,
		Body:    data[offset:end:end],
	}, end, nil
}

// splitRequestLine splits the line by single spaces into exactly three non-empty tokens
func splitRequestLine(line []byte) (methodValue, pathValue, versionValue []byte, err error) {
	methodValue, rest, _ := bytes.Cut(line, []byte{' '})
	if len(methodValue) == 0 {
		return nil, nil, nil, errors.ErrInvalidMethod
	}

	pathValue, rest, _ = bytes.Cut(rest, []byte{' '})
	if len(pathValue) == 0 {
		return nil, nil, nil, errors.ErrInvalidPath
	}

	versionValue, _, extra := bytes.Cut(rest, []byte{' '})
	if len(versionValue) == 0 || extra {
		return nil, nil, nil, errors.ErrInvalidVersion
	}

	return methodValue, pathValue, versionValue, nil
}

func parseHeader(line []byte) (Header, error) {
	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return Header{}, errors.ErrInvalidHeader
	}

	name := line[:colon]
	if !utf8.Valid(name) {
		return Header{}, errors.ErrInvalidHeader
	}

	return Header{
		Name:  uf.B2S(name),
		Value: trimPrefixSpaces(line[colon+1:]),
	}, nil
}

// findContentLength returns the value of the first Content-Length header. Any
// following duplicates are ignored. The name must match letter by letter, so
// control bytes never fold into the dash
func findContentLength(headers []Header) (int, error) {
	for _, header := range headers {
		if !strings.EqualFold(header.Name, "content-length") {
			continue
		}

		if !utf8.Valid(header.Value) {
			return 0, errors.ErrInvalidHeader
		}

		return parseUint(uf.B2S(header.Value))
	}

	return 0, nil
}

// trimPrefixSpaces cuts off leading spaces and tabs. Trailing ones are kept as is
func trimPrefixSpaces(b []byte) []byte {
	for i, char := range b {
		if char != ' ' && char != '\t' {
			return b[i:]
		}
	}

	return b[len(b):]
}
