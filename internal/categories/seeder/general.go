package seeder

import (
	"context"
	"fmt"

	"github.com/philly/inkwell/internal/categories/ports"
	"github.com/philly/inkwell/internal/platform/logger"
)

// GeneralCategorySeeder makes sure the protected General category exists.
type GeneralCategorySeeder struct {
	repo   ports.CategoryRepository
	logger logger.Logger
}

func NewGeneralCategorySeeder(repo ports.CategoryRepository, logger logger.Logger) *GeneralCategorySeeder {
	return &GeneralCategorySeeder{repo: repo, logger: logger}
}

func (s *GeneralCategorySeeder) Name() string { return "general-category" }

func (s *GeneralCategorySeeder) Seed(ctx context.Context) error {
	created, err := s.repo.EnsureGeneral(ctx)
	if err != nil {
		return fmt.Errorf("ensure General category: %w", err)
	}
	if created {
		s.logger.Info(ctx, "created General category")
	}
	return nil
}
