package entity

// Credentials is the durable part of a session: the signed-in principal,
// both tokens, and the tenant clinic. It survives process restarts so the
// user does not have to sign in on every run.
type Credentials struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ClinicID     string `json:"clinicId"`
}
