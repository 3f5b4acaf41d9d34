package tracking

import "context"

// ContributionStore holds the most recently published contributions.
// Publish replaces the whole set.
type ContributionStore interface {
	Publish(ctx context.Context, contributions map[string]*Contribution) error
	Get(ctx context.Context, dateKey string) (*Contribution, error)
	All(ctx context.Context) (map[string]*Contribution, error)
}
