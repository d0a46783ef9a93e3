package storage

import "context"

// Keys under which the app's documents live. These mirror the keys the SPA
// used in browser local storage, so an exported document stays recognizable.
const (
	KeyBudget    = "budget"
	KeyExpenses  = "expenses"
	KeyGoals     = "goals"
	KeyProfile   = "profileData"
	KeyLastAlert = "lastAlertPercentage"
	KeyLastTip   = "lastTipDate"
)

// allKeys is the full set of persisted keys, in reset order.
var allKeys = []string{
	KeyBudget,
	KeyExpenses,
	KeyGoals,
	KeyProfile,
	KeyLastAlert,
	KeyLastTip,
}

// KV is the persistent string key-value store the core runs against. There
// is no multi-key transaction primitive; callers must tolerate best-effort
// sequential writes.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
