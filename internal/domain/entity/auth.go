package entity

// LoginRequest carries the credentials for the two-step sign-in flow:
// the clinic is looked up by email first, then the user signs in against it.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	ClinicID string `json:"clinicId" validate:"required"`
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
	User         User   `json:"user"`
}

// RefreshRequest asks for a fresh access token using the long-lived refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RefreshResponse carries the newly issued access token.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
