package constants

const (
	// ContextKeyUserID is the gin context key holding the authenticated user's ID.
	ContextKeyUserID = "user_id"

	// AccessTokenCookie is the cookie carrying the signed access token.
	AccessTokenCookie = "access_token"

	// MinPasswordLength is the minimum accepted password length at registration.
	MinPasswordLength = 8
)
