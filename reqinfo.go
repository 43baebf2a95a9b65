// The reqinfo package answers simple classification questions about
// an HTTP request: which method it uses, which URI it targets, whether
// it was sent by XMLHttpRequest, and which deployment environment is
// serving it.  The most common uses for this library are as follows:
//
//	info := reqinfo.New(reqinfo.FromRequest(request))
//	if info.IsPost() && info.IsAjax() {
//	    // ...
//	}
//
//	uri, err := reqinfo.New(reqinfo.FromEnviron(os.Environ())).RequestURI()
//
// All answers are read from an Env, which is an immutable snapshot of
// server variables (REQUEST_METHOD, REQUEST_URI, HTTP_* headers and so
// on).  An Env can be built from a live *http.Request, from a CGI style
// process environment, or from a plain map in tests.
package reqinfo

import "go.uber.org/zap"

// Info is the set of queries a Request answers.  Code that dispatches
// on request metadata should accept an Info rather than a *Request.
type Info interface {
	Method() string
	RequestURI() (string, error)
	IsAjax() bool
	IsMethod(method string) bool
	IsGet() bool
	IsHead() bool
	IsPost() bool
	IsPut() bool
	IsPatch() bool
	IsDelete() bool
	IsOptions() bool
	IsEnvDev() bool
	IsEnvProd() bool
}

var _ Info = (*Request)(nil)

// A Request reads metadata about a single HTTP request from an Env.
// It never modifies the Env, so a *Request may be shared between
// goroutines.
type Request struct {
	env    Env
	envKey string
	log    *zap.Logger
}

// New creates a new *Request that answers queries using env.
func New(env Env, opts ...Option) *Request {
	cfg := newConfig(opts...)
	return &Request{
		env:    env,
		envKey: cfg.EnvironmentKey,
		log:    cfg.Logger,
	}
}

// Env returns the snapshot that request reads from.
func (request *Request) Env() Env {
	return request.env
}

// IsAjax returns whether or not the request was sent with an
// X-Requested-With header of exactly "XMLHttpRequest".
func (request *Request) IsAjax() bool {
	return request.env.Get(KeyRequestedWith) == "XMLHttpRequest"
}

// IsEnvDev returns whether or not the environment name variable is
// exactly "dev".
func (request *Request) IsEnvDev() bool {
	return request.environment() == EnvironmentDev
}

// IsEnvProd returns whether or not the environment name variable is
// exactly "prod".
func (request *Request) IsEnvProd() bool {
	return request.environment() == EnvironmentProd
}

func (request *Request) environment() string {
	return request.env.Get(request.envKey)
}

