package project

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Logger
}

func NewListProjectsUseCase(pRepo project.Repository, log logger.Logger) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo, logger: log}
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}
	return &ListProjectsOutput{Projects: projects}, nil
}
