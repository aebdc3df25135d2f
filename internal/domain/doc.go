// Package domain defines core data models, collaborator contracts and the
// error taxonomy shared across the bot. It contains plain types (types
// subpackage), interfaces (interfaces subpackage) and the coded Error type.
package domain
