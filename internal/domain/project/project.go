package project

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHubURL    *string  `json:"github_url"`
	DemoURL      *string  `json:"demo_url"`
	ImageURL     *string  `json:"image_url"`
}

var (
	ErrInvalidID       = errors.New("project id only allows lowercase letters, numbers, and hyphens")
	ErrProjectNotFound = errors.New("project not found")
	idRegex            = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func (p *Project) Validate() error {
	if !idRegex.MatchString(p.ID) {
		return ErrInvalidID
	}
	return nil
}

// Icon picks the card glyph from the project title.
func (p *Project) Icon() string {
	t := strings.ToLower(p.Title)
	switch {
	case strings.Contains(t, "music"):
		return "🎵"
	case strings.Contains(t, "food"):
		return "🍕"
	case strings.Contains(t, "dice"), strings.Contains(t, "die"):
		return "🎲"
	}
	return "🌾"
}

// Repository returns projects in display order.
type Repository interface {
	List(ctx context.Context) ([]*Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
}
