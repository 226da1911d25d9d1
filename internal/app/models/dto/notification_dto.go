package dto

// UnreadCountResponse reports how many notifications are unread
type UnreadCountResponse struct {
	Count int `json:"count"`
}
