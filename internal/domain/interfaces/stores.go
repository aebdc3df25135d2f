package interfaces

import domaintypes "crinkbot/internal/domain/types"

// IconStore is the read-only item icon lookup loaded at startup.
type IconStore interface {
	Lookup(id domaintypes.ItemID) ([]byte, error)
}
