/*
Package router defines the route table for the board API using Go 1.22+
method patterns on the standard ServeMux.

Every data route runs through the logging middleware. The board itself is
read with GET /board; all other routes are the mutations the UI gestures
map to, one route per board operation.
*/
package router
