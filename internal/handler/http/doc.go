// Package http implements the REST transport of the travel-diary server.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, CORS and bearer-token authentication are handled in this
// package before requests are delegated to the service layer.
package http
