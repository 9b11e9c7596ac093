package server

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/crypto/acme/autocert"
)

// Server exposes the client core over HTTP for the UI layer. The TLS path
// only matters when the gateway is hosted rather than run locally.
type Server struct {
	TLSDisabled       bool
	TLSDisabledPort   int
	AutocertHostnames []string
	Router            http.Handler
}

func (s *Server) Run(ctx context.Context) error {
	if s.TLSDisabled {
		return http.ListenAndServe(fmt.Sprintf(":%d", s.TLSDisabledPort), s.Router)
	}
	return http.Serve(autocert.NewListener(s.AutocertHostnames...), s.Router)
}
