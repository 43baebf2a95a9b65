package reqinfo

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type contextKey struct{}

// NewContext returns a copy of ctx carrying request.
func NewContext(ctx context.Context, request *Request) context.Context {
	return context.WithValue(ctx, contextKey{}, request)
}

// FromContext returns the *Request stored on ctx by NewContext or
// Middleware.
func FromContext(ctx context.Context) (*Request, bool) {
	request, ok := ctx.Value(contextKey{}).(*Request)
	return request, ok
}

// Middleware wraps a handler so that every request it serves carries
// a *Request on its context.  If WithEnvironment is given, its name is
// stored under the environment key of each Env before the *Request is
// built.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := newConfig(opts...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			env := FromRequest(r)
			if cfg.Environment != "" {
				env = env.With(cfg.EnvironmentKey, cfg.Environment)
			}
			request := New(env, opts...)
			if ce := cfg.Logger.Check(zap.DebugLevel, "classified request"); ce != nil {
				ce.Write(
					zap.String("method", request.Method()),
					zap.Bool("ajax", request.IsAjax()))
			}
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), request)))
		})
	}
}
