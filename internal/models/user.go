package models

// User represents an author of articles and comments
type User struct {
	Username  string  `json:"username" db:"username"`
	Name      string  `json:"name" db:"name"`
	AvatarURL *string `json:"avatar_url" db:"avatar_url"`
}
