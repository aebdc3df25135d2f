// Package collectionlog is a small JSON client for the collectionlog.net API.
//
// Only the "most recent item" endpoint is used: the first entry of
// /items/recent/{username} becomes a domain.CollectionItem.
package collectionlog
