package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Author == "" {
		return errors.New("author cannot be empty")
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// IsPublished reports whether the post has left the draft state.
func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}
