package homework

import "context"

// ReviewClient fetches homework status changes since a unix timestamp.
type ReviewClient interface {
	Statuses(ctx context.Context, fromDate int64) (*Response, error)
}
