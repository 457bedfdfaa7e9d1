package technology

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/domain/technology"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ListTechnologiesUseCase struct {
	techRepo technology.Repository
	logger   logger.Logger
}

func NewListTechnologiesUseCase(repo technology.Repository, log logger.Logger) *ListTechnologiesUseCase {
	return &ListTechnologiesUseCase{techRepo: repo, logger: log}
}

type ListTechnologiesInput struct {
	// Category narrows the list; empty or "All" returns everything.
	Category string
}

type ListTechnologiesOutput struct {
	Technologies []technology.Technology
}

func (uc *ListTechnologiesUseCase) Execute(ctx context.Context, input ListTechnologiesInput) (*ListTechnologiesOutput, error) {
	techs, err := uc.techRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list technologies failed: %w", err)
	}
	return &ListTechnologiesOutput{Technologies: technology.Filter(techs, input.Category)}, nil
}
