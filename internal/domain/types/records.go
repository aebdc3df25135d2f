package types

import "strings"

// CollectionItem is the most recent collection-log slot a player obtained.
type CollectionItem struct {
	ID         ItemID `json:"id"`
	Name       string `json:"name"`
	ObtainedAt string `json:"obtainedAt"`
}

// ObtainedDate returns the date portion of ObtainedAt (everything before "T").
func (i CollectionItem) ObtainedDate() string {
	date, _, _ := strings.Cut(i.ObtainedAt, "T")
	return date
}
