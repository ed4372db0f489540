package v1

import "net/http"

// requireScheduler wraps a handler and returns 503 if no scheduler is configured.
func (s *Server) requireScheduler(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Scheduler == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Scheduler not configured")
			return
		}
		next(w, r)
	}
}

// requireGateway wraps a handler and returns 503 if no download gateway is configured.
func (s *Server) requireGateway(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Gateway == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Download gateway not configured")
			return
		}
		next(w, r)
	}
}
