package dates

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Resolve finds the calendar date a relative expression refers to.
	// An expression with no date is not an error: Resolved is false.
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)
}
