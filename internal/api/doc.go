// Package api provides the REST API server for geoset.
//
// The server exposes the configured rule lists, their built artifacts
// and a synchronous build trigger over HTTP:
//   - Rule list inspection and artifact serving
//   - Build trigger (one build at a time)
//   - Status, health checks and Prometheus metrics
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "error_code",
//	    "message": "Human-readable error message",
//	    "details": { /* optional context */ }
//	  }
//	}
//
// Access is restricted to private subnets, so the server can bind to
// 0.0.0.0 on a LAN host without exposing the build trigger publicly.
package api
