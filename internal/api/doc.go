// Package api handles incoming HTTP requests, request validation and
// response formatting for the blog. Handlers translate HTTP concerns into
// calls on the service layer and map service errors back to status codes
// in one place (MapErrorToStatusCode).
//
// Authentication and authorization live in the middleware subpackage; the
// handlers only read the identity it leaves in the request context.
package api
