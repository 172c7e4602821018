package dto

// MemberPayload mirrors the member management request body.
type MemberPayload struct {
	TeamName  string `json:"team_name" binding:"required"`
	UserEmail string `json:"user_email" binding:"required"`
	IsOwner   bool   `json:"user_owner"`
}
