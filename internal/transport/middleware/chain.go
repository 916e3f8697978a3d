package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies mws outermost first: Chain(a, b)(h) is a(b(h)). Nil
// entries are skipped, so optional layers can be listed inline.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}

// If returns mw when on is true and nil otherwise.
func If(on bool, mw func() Middleware) Middleware {
	if !on {
		return nil
	}
	return mw()
}
