package domain

import "context"

// TagCount is one tag used by an account's active events and how many events carry it.
// swagger:model TagCount
type TagCount struct {
	Name   string `json:"name"`
	Events int    `json:"events"`
}

// TagRepository reads the tag catalog derived from stored events.
type TagRepository interface {
	// ListByAccountID returns the distinct tags of the account's active events, most used first.
	ListByAccountID(ctx context.Context, accountID string, limit int) ([]TagCount, error)
}

// TagService serves tag suggestions for filtering and editing events.
type TagService interface {
	ListTags(ctx context.Context, accountID string, limit int) ([]TagCount, error)
}
