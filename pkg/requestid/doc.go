// Package requestid tags every request with a correlation id.
//
// Middleware reuses a well-formed client supplied X-Request-ID header or
// generates a UUID, stores the id in the request context and echoes it in the
// response. LoggerExtractor feeds the id into pkg/logger records.
package requestid
