package primary

import "context"

// TargetService toggles target completion. No cascade up to the week.
type TargetService interface {
	SetComplete(ctx context.Context, targetID string, complete bool) error
}
