package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ExternalLoginInput struct {
	IDToken string `json:"idToken"`
}
