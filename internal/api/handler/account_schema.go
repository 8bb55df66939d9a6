package handler

// registerRequest accepts both the client-side `userName` and the legacy
// server-side `name` field for the same value.
type registerRequest struct {
	UserName string `json:"userName"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// resolveUserName collapses the userName/name alias at the request
// boundary; userName wins when both are present.
func (r registerRequest) resolveUserName() string {
	if r.UserName != "" {
		return r.UserName
	}
	return r.Name
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// userPayload is the sanitized user shape returned by every endpoint.
// Password hash and token material never appear here.
type userPayload struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

type accountResponse struct {
	Message string      `json:"message"`
	User    userPayload `json:"user"`
}

type refreshResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type profileResponse struct {
	User userPayload `json:"user"`
}
