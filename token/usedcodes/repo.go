package usedcodes

import (
	"context"
	"time"
)

// Repo remembers which authorization codes have been redeemed. Entries only
// need to live until the code itself expires, after which the signature check
// rejects the code anyway.
type Repo interface {
	// MarkUsed records id as redeemed and reports whether this was the first redemption
	MarkUsed(ctx context.Context, id string, expiresAt time.Time) (bool, error)
	Close() error
}
