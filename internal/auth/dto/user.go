package dto

// UserOutput is the user summary returned alongside token pairs and by
// the profile endpoint. Never includes credential material.
type UserOutput struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
}

// AuthResponse is what register/login/external-login return: the
// canonical user plus a freshly issued token pair. Created reports
// whether this login provisioned a new account (first-time external
// login), so the handler can frame 201 vs 200.
type AuthResponse struct {
	User         UserOutput `json:"user"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	Created      bool       `json:"-"`
	// Synthetic is set when the login was resolved through the
	// development identity stand-in rather than a verified provider.
	Synthetic bool `json:"-"`
}
