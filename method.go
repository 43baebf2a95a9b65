package reqinfo

import (
	"net/http"
	"strings"
)

// DefaultMethod is returned by Method when the Env carries neither a
// method override nor a request method.
const DefaultMethod = http.MethodGet

// Method returns the upper case HTTP method of the request.  An
// X-HTTP-Method-Override header takes precedence over the transport
// method, so clients that can only send GET and POST can still tunnel
// PUT, PATCH and DELETE.
func (request *Request) Method() string {
	if method, ok := request.env.Lookup(KeyMethodOverride); ok {
		return strings.ToUpper(method)
	}
	if method, ok := request.env.Lookup(KeyRequestMethod); ok {
		return strings.ToUpper(method)
	}
	return DefaultMethod
}

// IsMethod returns whether or not Method matches method, ignoring
// case.
func (request *Request) IsMethod(method string) bool {
	return request.Method() == strings.ToUpper(method)
}

// IsGet returns whether or not Method is GET.
func (request *Request) IsGet() bool {
	return request.Method() == http.MethodGet
}

// IsHead returns whether or not Method is HEAD.
func (request *Request) IsHead() bool {
	return request.Method() == http.MethodHead
}

// IsPost returns whether or not Method is POST.
func (request *Request) IsPost() bool {
	return request.Method() == http.MethodPost
}

// IsPut returns whether or not Method is PUT.
func (request *Request) IsPut() bool {
	return request.Method() == http.MethodPut
}

// IsPatch returns whether or not Method is PATCH.
func (request *Request) IsPatch() bool {
	return request.Method() == http.MethodPatch
}

// IsDelete returns whether or not Method is DELETE.
func (request *Request) IsDelete() bool {
	return request.Method() == http.MethodDelete
}

// IsOptions returns whether or not Method is OPTIONS.
func (request *Request) IsOptions() bool {
	return request.Method() == http.MethodOptions
}
