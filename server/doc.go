// Package server exposes the HTTP API.
//
// Endpoints:
//
//	POST /api/chat          answer a question against the indexed corpus
//	POST /api/scout/trigger start a discovery cycle
//	GET  /api/scout/status  stream job progress as Server-Sent Events
//	GET  /health            liveness plus corpus and model info
//
// Errors are returned as a JSON envelope {"error", "status_code"}. In
// production mode internal failures map to a generic localized message;
// debug mode exposes the raw error text.
package server
