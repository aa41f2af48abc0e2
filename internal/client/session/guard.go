package session

import "github.com/blognest/blognest-cli/internal/common"

// Guard gates credential-protected surfaces. It does not inspect the
// credential beyond presence; authenticated components rely on the
// backend rejecting stale tokens.
type Guard struct {
	store *Store
}

func NewGuard(store *Store) *Guard {
	return &Guard{store: store}
}

// Check returns common.ErrAuthRequired for unauthenticated access.
func (g *Guard) Check() error {
	if !g.store.IsAuthenticated() {
		return common.ErrAuthRequired
	}
	return nil
}
