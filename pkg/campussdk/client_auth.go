package campussdk

import (
	"context"
	"net/http"
)

// Register creates an account. It does not sign the user in.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) RegisterResult {
	return invoke[RegisterResult](ctx, c, http.MethodPost, "/auth/register", req)
}

// Login exchanges credentials for a token and stores the session.
//
// The token and profile are written together. If the response lacks either
// one, or the store rejects the write, nothing is stored and the result
// reports failure.
func (c *SDKClient) Login(ctx context.Context, creds Credentials) LoginResult {
	res := invoke[LoginResult](ctx, c, http.MethodPost, "/auth/login", creds)
	if !res.Success {
		return res
	}

	if res.Token == "" || res.User == nil {
		c.logger.WarnContext(ctx, "Login response missing token or user")
		return LoginResult{Envelope: Envelope{
			Kind:    KindBackendUnavailable,
			Message: MessageBackendUnavailable,
		}}
	}

	if err := c.sessions.Begin(ctx, res.Token, res.User); err != nil {
		c.logger.ErrorContext(ctx, "Failed to store session", "error", err)
		return LoginResult{Envelope: Envelope{
			Kind:    KindRequestFailed,
			Message: MessageSessionNotSaved,
		}}
	}

	return res
}

// Logout clears the stored session. No request is sent to the backend.
func (c *SDKClient) Logout(ctx context.Context) ActionResult {
	if err := c.sessions.End(ctx); err != nil {
		c.logger.ErrorContext(ctx, "Logout failed", "error", err)
		return failed[ActionResult](KindRequestFailed, MessageRequestFailed)
	}
	return ActionResult{Envelope: Envelope{Success: true}}
}

// CurrentUser returns the cached profile, or nil when signed out. A profile
// stored without a token counts as signed out.
func (c *SDKClient) CurrentUser(ctx context.Context) *UserProfile {
	s, err := c.sessions.Current(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to load session", "error", err)
		return nil
	}
	return s.User
}

// Token returns the stored bearer token, or "" when signed out.
func (c *SDKClient) Token(ctx context.Context) string {
	s, err := c.sessions.Current(ctx)
	if err != nil {
		return ""
	}
	return s.Token
}

// CurrentSession returns the stored session, including the token's
// advertised expiry. The zero Session means signed out.
func (c *SDKClient) CurrentSession(ctx context.Context) (Session, error) {
	return c.sessions.Current(ctx)
}

// RequireRole returns the current session if its user has role, and
// ErrNotSignedIn otherwise.
func (c *SDKClient) RequireRole(ctx context.Context, role Role) (Session, error) {
	return c.sessions.Require(ctx, role)
}
