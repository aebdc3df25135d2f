// Package command turns chat messages into bot actions.
//
// Parse maps a line of text to a typed Intent. The Interpreter owns the
// per-user findme counters, runs the handler for each Intent and converts
// every failure into a single reply on the originating channel.
package command
