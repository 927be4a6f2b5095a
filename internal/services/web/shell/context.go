package shell

import "context"

type contextKey struct{}

// WithShell returns ctx carrying s.
func WithShell(ctx context.Context, s *Shell) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the shell attached by the registry middleware.
func FromContext(ctx context.Context) (*Shell, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(contextKey{}).(*Shell)
	return s, ok && s != nil
}

// MustFromContext is FromContext for handlers mounted behind the registry
// middleware. It panics when called anywhere else.
func MustFromContext(ctx context.Context) *Shell {
	s, ok := FromContext(ctx)
	if !ok {
		panic("shell: no shell in request context; handler is mounted outside the shell middleware")
	}
	return s
}
