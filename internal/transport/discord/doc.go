// Package discord adapts a discordgo gateway session to domain.Transport.
//
// Every MessageCreate event becomes a domain.Inbound whose Reply posts back
// to the channel the message came from.
package discord
