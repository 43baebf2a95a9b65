package reqinfo

import (
	"regexp"

	"go.uber.org/zap"
)

var absoluteURIPrefix = regexp.MustCompile(`(?i)^(http|https)://[^/]+`)

// RequestURI returns the request target, including the query string
// if there is one.  Some servers pass along the absolute form
// ("http://example.com/path?q=1") that proxies send; in that case the
// scheme and authority are removed, leaving "/path?q=1".
//
// A *MissingFieldError is returned if the Env has no REQUEST_URI.
// That only happens when the Env was not built from an HTTP request.
func (request *Request) RequestURI() (string, error) {
	uri, ok := request.env.Lookup(KeyRequestURI)
	if !ok {
		request.log.Debug("request target is missing", zap.String("key", KeyRequestURI))
		return "", &MissingFieldError{Key: KeyRequestURI}
	}
	if uri == "" || uri[0] == '/' {
		return uri, nil
	}
	relative := absoluteURIPrefix.ReplaceAllLiteralString(uri, "")
	request.log.Debug("stripped absolute-form request target",
		zap.String("uri", uri),
		zap.String("relative", relative))
	return relative, nil
}
