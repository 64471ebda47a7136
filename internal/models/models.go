package models

import "github.com/google/uuid"

// newID generates the string primary key used by every table. The bot and
// admin share these ids, so they stay opaque strings rather than ints.
func newID() string {
	return uuid.New().String()
}
