package server

import (
	"net/http"
	"time"
)

// NewHTTPServer wraps the router. Uploads are capped well below the write
// timeout, so one budget covers JSON and multipart requests alike.
func NewHTTPServer(config Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              config.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
