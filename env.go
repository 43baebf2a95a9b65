package reqinfo

import (
	"net/http"
	"sort"
	"strings"
)

// Keys read by Request.  They use the same names that web servers
// export to CGI programs.
const (
	KeyMethodOverride = "HTTP_X_HTTP_METHOD_OVERRIDE"
	KeyRequestMethod  = "REQUEST_METHOD"
	KeyRequestURI     = "REQUEST_URI"
	KeyRequestedWith  = "HTTP_X_REQUESTED_WITH"
	KeyProtocol       = "SERVER_PROTOCOL"
	KeyContentType    = "CONTENT_TYPE"
	KeyContentLength  = "CONTENT_LENGTH"

	// DefaultEnvironmentKey is the variable holding the deployment
	// environment name unless WithEnvironmentKey says otherwise.
	DefaultEnvironmentKey = "ABC_ENV"
)

// Environment names recognized by IsEnvDev and IsEnvProd.
const (
	EnvironmentDev  = "dev"
	EnvironmentProd = "prod"
)

// An Env is an immutable table of server variables describing one
// request.  The zero value is an empty Env.
type Env struct {
	vars map[string]string
}

// NewEnv creates an Env holding a copy of vars.
func NewEnv(vars map[string]string) Env {
	env := Env{vars: make(map[string]string, len(vars))}
	for key, value := range vars {
		env.vars[key] = value
	}
	return env
}

// FromRequest builds an Env from request the way a CGI host would.
// Headers are stored as HTTP_<NAME>, with multiple values joined by
// ", " (or "; " for Cookie).  Header names containing '_' are dropped,
// as nginx and Apache do, since they would collide with the hyphenated
// spelling of the same name.  The Proxy header is dropped as well.
// Client side requests, which have no RequestURI, use the request
// URL's path and query instead.
func FromRequest(request *http.Request) Env {
	env := Env{vars: make(map[string]string)}
	if request == nil {
		return env
	}
	for name, values := range request.Header {
		if strings.ContainsRune(name, '_') {
			continue
		}
		key := headerKey(name)
		switch key {
		case "HTTP_PROXY":
			continue
		case "HTTP_COOKIE":
			env.vars[key] = strings.Join(values, "; ")
		default:
			env.vars[key] = strings.Join(values, ", ")
		}
	}
	env.vars[KeyRequestMethod] = request.Method
	env.vars[KeyProtocol] = request.Proto
	switch {
	case request.RequestURI != "":
		env.vars[KeyRequestURI] = request.RequestURI
	case request.URL != nil:
		env.vars[KeyRequestURI] = request.URL.RequestURI()
	}
	return env
}

func headerKey(name string) string {
	key := strings.ToUpper(strings.Replace(name, "-", "_", -1))
	switch key {
	case KeyContentType, KeyContentLength:
		return key
	}
	return "HTTP_" + key
}

// FromEnviron builds an Env from KEY=VALUE pairs, as returned by
// "os".Environ.  Entries without an '=' are ignored; later entries
// overwrite earlier entries with the same key.
func FromEnviron(environ []string) Env {
	env := Env{vars: make(map[string]string, len(environ))}
	for _, entry := range environ {
		idx := strings.IndexRune(entry, '=')
		if idx < 0 {
			continue
		}
		env.vars[entry[:idx]] = entry[idx+1:]
	}
	return env
}

// Lookup returns the value stored at key and whether or not key is
// present.  A present key may have an empty value.
func (env Env) Lookup(key string) (string, bool) {
	value, ok := env.vars[key]
	return value, ok
}

// Get returns the value stored at key, or "" if key is absent.
func (env Env) Get(key string) string {
	return env.vars[key]
}

// With returns a copy of env with key set to value.  env itself is
// left untouched.
func (env Env) With(key, value string) Env {
	next := NewEnv(env.vars)
	next.vars[key] = value
	return next
}

// Len returns the number of variables in env.
func (env Env) Len() int {
	return len(env.vars)
}

// Keys returns the sorted names of all variables in env.
func (env Env) Keys() []string {
	keys := make([]string, 0, len(env.vars))
	for key := range env.vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
