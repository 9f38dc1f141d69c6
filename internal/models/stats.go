package models

// Stats holds row counts per entity, reported by /metrics
type Stats struct {
	Topics   int `json:"topics"`
	Users    int `json:"users"`
	Articles int `json:"articles"`
	Comments int `json:"comments"`
}
