package primary

import "context"

// WeekService toggles week completion. No cascade: marking a week complete
// leaves its targets untouched.
type WeekService interface {
	SetComplete(ctx context.Context, weekID string, complete bool) error
}
