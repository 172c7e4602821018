package dto

// UserPayload mirrors the user management request body. Field names match
// the persisted column names; existing clients depend on them.
type UserPayload struct {
	Email    string `json:"user_email" binding:"required"`
	Nickname string `json:"user_nickname"`
	Image    string `json:"user_image"`
}

// SettingsResponse exposes the integration keys loaded at startup.
type SettingsResponse struct {
	Kakao  string `json:"kakao"`
	Google string `json:"google"`
}
