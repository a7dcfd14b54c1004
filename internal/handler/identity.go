package handler

import (
	"context"
	"net/http"

	"github.com/osse101/ForecastLedger_Go/internal/domain"
	"github.com/osse101/ForecastLedger_Go/internal/logger"
)

type callerCtxKey struct{}

// WithCaller returns a context carrying the caller identity. The identity is
// injected by the trusted gateway middleware; handlers never read it from
// request bodies.
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerCtxKey{}, caller)
}

// CallerFromContext extracts the caller identity from the context, if present.
func CallerFromContext(ctx context.Context) (domain.Caller, bool) {
	v := ctx.Value(callerCtxKey{})
	if v == nil {
		return "", false
	}
	if caller, ok := v.(domain.Caller); ok && caller != "" {
		return caller, true
	}
	return "", false
}

// RequireCaller extracts the caller identity or writes a 401 response.
// If ok is false, the HTTP response has already been written.
func RequireCaller(w http.ResponseWriter, r *http.Request) (domain.Caller, bool) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn("Request without caller identity")
		respondError(w, http.StatusUnauthorized, ErrMsgMissingCallerIdentity)
		return "", false
	}
	return caller, true
}
