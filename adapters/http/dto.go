package http

import (
	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/technology"
)

// Profile DTOs

type ContactInfoDTO struct {
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

type ProfileDTO struct {
	Name      string         `json:"name"`
	Title     string         `json:"title"`
	Bio       string         `json:"bio"`
	PhotoURL  string         `json:"photo_url"`
	ResumeURL string         `json:"resume_url"`
	Contact   ContactInfoDTO `json:"contact"`
}

type ProfileResponse struct {
	Profile ProfileDTO `json:"profile"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		Name:      p.Name,
		Title:     p.Title,
		Bio:       p.Bio,
		PhotoURL:  p.PhotoURL,
		ResumeURL: p.ResumeURL,
		Contact: ContactInfoDTO{
			Email:    p.Contact.Email,
			GitHub:   p.Contact.GitHub,
			LinkedIn: p.Contact.LinkedIn,
		},
	}
}

// Project DTOs

type ProjectDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHubURL    *string  `json:"github_url"`
	DemoURL      *string  `json:"demo_url"`
	ImageURL     *string  `json:"image_url"`
}

type ProjectListResponse struct {
	Projects []ProjectDTO `json:"projects"`
}

type ProjectResponse struct {
	Project ProjectDTO `json:"project"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	techs := p.Technologies
	if techs == nil {
		techs = []string{}
	}
	return ProjectDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: techs,
		GitHubURL:    p.GitHubURL,
		DemoURL:      p.DemoURL,
		ImageURL:     p.ImageURL,
	}
}

// Technology DTOs

type TechnologyDTO struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

type TechnologyListResponse struct {
	Technologies []TechnologyDTO `json:"technologies"`
}

func ToTechnologyDTOs(techs []technology.Technology) []TechnologyDTO {
	dtos := make([]TechnologyDTO, len(techs))
	for i, t := range techs {
		dtos[i] = TechnologyDTO{Name: t.Name, Category: t.Category, Level: t.Level}
	}
	return dtos
}

// Contact DTOs

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ContactResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
