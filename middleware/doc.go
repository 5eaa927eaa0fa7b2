/*
Package middleware provides the HTTP plumbing shared by every route:
request logging with status capture, JSON response and error helpers,
request body parsing, and CORS for browser-hosted board UIs.
*/
package middleware
