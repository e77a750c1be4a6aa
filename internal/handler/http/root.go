package http

import "net/http"

const rootGreeting = "Hello World!"

// root is the liveness endpoint.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rootGreeting))
}
