// Package http implements the HTTP transport layer of ms-cpf.
//
// It exposes route wiring, the CPF validation endpoint, and middleware used
// by the API. Request tracing, access logging, panic recovery and response
// compression are handled in this package before requests are delegated to
// the service layer. Every answer of the CPF endpoint is JSON.
package http
