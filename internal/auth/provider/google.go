package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Hoff08/barbeariateste/internal/auth/domain"
	autherror "github.com/Hoff08/barbeariateste/internal/errors"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier validates Google ID tokens against the tokeninfo
// endpoint and checks the audience matches our client id.
type GoogleVerifier struct {
	clientID     string
	tokenInfoURL string
	httpClient   *http.Client
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID:     clientID,
		tokenInfoURL: googleTokenInfoURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

type googleTokenInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Audience      string `json:"aud"`
}

func (g *GoogleVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	endpoint := g.tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrIdentityVerificationFailed, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrIdentityVerificationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", autherror.ErrIdentityVerificationFailed, resp.StatusCode, string(body))
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrIdentityVerificationFailed, err)
	}

	if info.Audience != g.clientID {
		return nil, fmt.Errorf("%w: audience mismatch", autherror.ErrIdentityVerificationFailed)
	}
	if info.Sub == "" || info.Email == "" {
		return nil, fmt.Errorf("%w: incomplete token payload", autherror.ErrIdentityVerificationFailed)
	}

	return &Identity{
		Email:      info.Email,
		Name:       info.Name,
		ExternalID: info.Sub,
	}, nil
}

func (g *GoogleVerifier) Provider() domain.Provider {
	return domain.ProviderGoogle
}
