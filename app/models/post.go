package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Post represents a published blog post.
type Post struct {
	ID        int       `validate:"gte=0"`
	Title     string    `validate:"required,max=100"`
	Content   string    `validate:"required"`
	CreatedAt time.Time `validate:"-"`
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
}
