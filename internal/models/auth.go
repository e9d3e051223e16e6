package models

// AuthorLabel is the fixed service identifier stamped on every successful
// login response. It is never derived from upstream data.
const AuthorLabel = "Lavadev - DoPhucLam"

// LoginRequest carries the caller's credentials. They are forwarded to the
// upstream login endpoint and never stored.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthenticatedProfile is the client-facing result of a successful login.
// The token is the upstream access token, echoed back opaque; callers
// attach it verbatim as the Authorization header on read operations.
type AuthenticatedProfile struct {
	Author   string `json:"author"`
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UpstreamLoginPayload mirrors the interesting part of the upstream login
// body. The upstream sends many more fields (issue/expiry timestamps,
// internal codes); anything not declared here is discarded on decode.
type UpstreamLoginPayload struct {
	AccessToken string `json:"access_token"`
	UserName    string `json:"userName"`
	Name        string `json:"name"`
	Principal   string `json:"principal"`
	Roles       string `json:"roles"`
}

// ProfileFromLoginPayload maps the upstream login payload into the client
// contract: token from the access token, email from the principal field,
// role from the roles field.
func ProfileFromLoginPayload(p *UpstreamLoginPayload) *AuthenticatedProfile {
	return &AuthenticatedProfile{
		Author:   AuthorLabel,
		Message:  "Authentication successful",
		Token:    p.AccessToken,
		Username: p.UserName,
		Name:     p.Name,
		Email:    p.Principal,
		Role:     p.Roles,
	}
}
