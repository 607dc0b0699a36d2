package provider

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/Hoff08/barbeariateste/internal/auth/domain"
	autherror "github.com/Hoff08/barbeariateste/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

const appleKeysURL = "https://appleid.apple.com/auth/keys"

// AppleVerifier validates Sign in with Apple ID tokens: it fetches
// Apple's signing keys, checks the RS256 signature against the key the
// token names, and verifies the audience and issuer claims.
type AppleVerifier struct {
	clientID   string
	keysURL    string
	httpClient *http.Client
}

func NewAppleVerifier(clientID string) *AppleVerifier {
	return &AppleVerifier{
		clientID:   clientID,
		keysURL:    appleKeysURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type appleJWK struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type appleJWKSet struct {
	Keys []appleJWK `json:"keys"`
}

type appleClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func (a *AppleVerifier) fetchKeys(ctx context.Context) (*appleJWKSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.keysURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var keys appleJWKSet
	if err := json.NewDecoder(resp.Body).Decode(&keys); err != nil {
		return nil, err
	}
	return &keys, nil
}

func (k *appleJWK) publicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("invalid modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("invalid exponent: %w", err)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}

func (a *AppleVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	keys, err := a.fetchKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrIdentityVerificationFailed, err)
	}

	claims := &appleClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		kid, _ := token.Header["kid"].(string)
		for i := range keys.Keys {
			if keys.Keys[i].Kid == kid {
				return keys.Keys[i].publicKey()
			}
		}
		return nil, fmt.Errorf("no signing key for kid %q", kid)
	}, jwt.WithAudience(a.clientID))

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", autherror.ErrIdentityVerificationFailed, err)
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, fmt.Errorf("%w: incomplete token payload", autherror.ErrIdentityVerificationFailed)
	}

	// Apple id tokens carry no display name; first-login provisioning
	// gets a placeholder the user can change later.
	return &Identity{
		Email:      claims.Email,
		Name:       "Apple User",
		ExternalID: claims.Subject,
	}, nil
}

func (a *AppleVerifier) Provider() domain.Provider {
	return domain.ProviderApple
}
