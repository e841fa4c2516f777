package dto

// SessionRequest identifies the member opening a storefront session.
type SessionRequest struct {
	UserID string `json:"user_id"`
}

// SessionResponse carries the issued session token.
type SessionResponse struct {
	Token string `json:"token"`
}
