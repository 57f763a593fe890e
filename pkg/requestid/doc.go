// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client supplied X-Request-ID header when it is made of
// letters, digits, '-' and '_' and is at most 128 bytes long. Otherwise it
// assigns a fresh time-ordered id from package orgid. The id is echoed in the
// response header and stored in the request context, where LoggerExtractor
// picks it up for structured logs.
package requestid
