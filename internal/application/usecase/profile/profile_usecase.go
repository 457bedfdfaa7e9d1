package profile

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type GetProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewGetProfileUseCase(repo profile.Repository, log logger.Logger) *GetProfileUseCase {
	return &GetProfileUseCase{profileRepo: repo, logger: log}
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *GetProfileUseCase) Execute(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}
