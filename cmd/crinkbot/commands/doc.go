// Package commands defines the crinkbot CLI.
//
// Commands
//
//   - run          Connect to Discord and answer commands until interrupted
//   - console      Feed stdin lines to the command interpreter, no Discord needed
//   - dropchance   Render a drop chance chart to a PNG file
//   - icon         Inspect or extract icons from the item icon dataset
//   - seal         Encrypt the credentials from a .env file into a secrets file
//
// # Configuration
//
// Settings come from the process environment, an optional sealed secrets
// file (--secrets with -p) and a .env file (--env-file), in that order of
// precedence. See internal/app.Config for the keys.
package commands
