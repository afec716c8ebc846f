package auth

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces"
)

// EnvIdentityProvider resolves the authenticated user from the SYNC_USER_ID
// environment variable. An empty value means no session: the app keeps
// working against the local store and nothing is synced.
//
// Login/Logout mutate the provider so the coordinator can be driven through
// the HTTP surface without a real auth backend.
type EnvIdentityProvider struct {
	mu     sync.RWMutex
	userID string
}

var _ interfaces.IIdentityProvider = (*EnvIdentityProvider)(nil)

func NewEnvIdentityProvider() *EnvIdentityProvider {
	return &EnvIdentityProvider{userID: strings.TrimSpace(os.Getenv("SYNC_USER_ID"))}
}

func (p *EnvIdentityProvider) CurrentUserID(_ context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.userID, nil
}

// Login sets the active user id. Blank ids are rejected by keeping the
// previous session untouched.
func (p *EnvIdentityProvider) Login(userID string) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return
	}
	p.mu.Lock()
	p.userID = userID
	p.mu.Unlock()
}

func (p *EnvIdentityProvider) Logout() {
	p.mu.Lock()
	p.userID = ""
	p.mu.Unlock()
}
