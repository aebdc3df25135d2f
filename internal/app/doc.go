// Package app loads configuration and wires the bot's dependencies.
//
// Load merges the process environment, an optional sealed secrets file and
// an optional .env file into Config. NewWire builds the stores, API
// clients, interpreter, transport and dispatcher from that Config.
package app
