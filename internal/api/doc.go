// Package api provides HTTP handlers for the API.
//
// Handlers decode and validate requests, resolve the authenticated user
// from the request context, delegate to the service layer, and translate
// service errors into the error envelope via RespondWithMappedError.
package api
