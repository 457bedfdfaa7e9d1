package profile

import (
	"context"
	"errors"
)

type Contact struct {
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// Profile is the portfolio owner's public card. There is exactly one.
type Profile struct {
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Bio       string  `json:"bio"`
	PhotoURL  string  `json:"photo_url"`
	ResumeURL string  `json:"resume_url"`
	Contact   Contact `json:"contact"`
}

var ErrProfileNotFound = errors.New("profile not found")

type Repository interface {
	Get(ctx context.Context) (*Profile, error)
}
