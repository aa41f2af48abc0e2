// Package api implements the outbound REST gateway of the BlogNest
// client. It is the sole network boundary: higher components never
// construct HTTP requests directly. The gateway owns the base address,
// the request timeout, credential attachment, and normalization of
// connection-level failures into a uniform error shape.
package api
