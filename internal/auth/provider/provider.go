// Package provider verifies raw identity-provider tokens and reduces
// them to a {email, name, externalId} triple the resolver can consume.
package provider

import (
	"context"

	"github.com/Hoff08/barbeariateste/internal/auth/domain"
)

//go:generate mockgen -destination=../../mocks/mock_identity_verifier.go -package=mocks github.com/Hoff08/barbeariateste/internal/auth/provider IdentityVerifier

// Identity is a verified external identity. Synthetic marks identities
// produced by the development stand-in rather than a cryptographically
// verified provider token; callers must never treat a synthetic
// identity as a trust-equivalent login outside development.
type Identity struct {
	Email      string
	Name       string
	ExternalID string
	Synthetic  bool
}

type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
	Provider() domain.Provider
}
