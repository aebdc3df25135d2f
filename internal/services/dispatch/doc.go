// Package dispatch feeds inbound transport messages to a handler with a
// bounded number of handlers in flight.
package dispatch
