package repository

import (
	"errors"
	"log/slog"
)

// Query carries paging options for list operations.
type Query struct {
	Limit int

	Paginator *Paginator
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{}
}

// ApplyPagination fills the query from request parameters. An empty token
// means the first page.
func (q *Query) ApplyPagination(limit int32, token string) error {
	queryLimit := DefaultPaginationLimit
	if limit > 0 {
		queryLimit = min(maxPaginationLimit, int(limit))
	}
	q.Limit = queryLimit

	if token == "" {
		return nil
	}

	paginator, err := DecodePageToken(token)
	if err != nil {
		slog.Error("failed to decode page token", slog.Any("err", err), slog.String("token", token))
		return errors.New("invalid page token")
	}
	q.Paginator = paginator
	return nil
}
