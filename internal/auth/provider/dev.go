package provider

import (
	"context"
	"fmt"

	"github.com/Hoff08/barbeariateste/internal/auth/domain"
)

// DevVerifier stands in for a real provider when that provider is not
// configured. It accepts any token and returns a deterministic
// synthetic identity so the external-login flow can be exercised
// offline. It is only ever wired up by development configuration;
// production wiring constructs the real verifier instead.
type DevVerifier struct {
	provider domain.Provider
	now      func() int64
}

// NewDevVerifier builds a stand-in for the given provider. now supplies
// the seed for the synthetic external id; pass nil for a fixed seed so
// repeated logins resolve to the same account.
func NewDevVerifier(p domain.Provider, now func() int64) *DevVerifier {
	if now == nil {
		now = func() int64 { return 0 }
	}
	return &DevVerifier{provider: p, now: now}
}

func (d *DevVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	return &Identity{
		Email:      fmt.Sprintf("dev.%s@example.com", d.provider),
		Name:       fmt.Sprintf("Dev %s User", d.provider),
		ExternalID: fmt.Sprintf("%s_%d", d.provider, d.now()),
		Synthetic:  true,
	}, nil
}

func (d *DevVerifier) Provider() domain.Provider {
	return d.provider
}
