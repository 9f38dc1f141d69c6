package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Topic groups articles under a slug
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

// CreateTopicRequest is the body of POST /api/topics
type CreateTopicRequest struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Validate checks required fields and the topics column widths.
func (r CreateTopicRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Slug, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Description, validation.Required, validation.Length(1, 255)),
	)
}
