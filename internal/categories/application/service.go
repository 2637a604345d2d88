package application

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/categories/domain"
	"github.com/philly/inkwell/internal/categories/ports"
	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/events"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/postgres"
)

var (
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeCategoryNotFound,
		"category not found",
		http.StatusNotFound,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeCategoryNameRequired,
		"category name is required",
		http.StatusBadRequest,
	)
	ErrNameTooLong = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"category name must not exceed 60 characters",
		http.StatusBadRequest,
	)
	ErrNameExists = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeCategoryNameExists,
		"a category with this name already exists",
		http.StatusConflict,
	)
	ErrGeneralProtected = apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeGeneralCategoryLocked,
		"the General category cannot be deleted or renamed",
		http.StatusBadRequest,
	)
	ErrGeneralMissing = apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeGeneralCategoryMissing,
		"the General category does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidReassignTarget = apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeInvalidReassignTarget,
		"reassignment target must be another existing category",
		http.StatusBadRequest,
	)
	ErrCategoryInUse = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeCategoryInUse,
		"posts were added to the category while it was being deleted, try again",
		http.StatusConflict,
	)
	errInternal = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeGeneral,
		"category operation failed",
		http.StatusInternalServerError,
	)
)

// staleSetWindow is how long after a change the cache is dropped a second
// time, catching lists other instances read before the change committed.
const staleSetWindow = 250 * time.Millisecond

type CategoriesService struct {
	repo      ports.CategoryRepository
	cache     ports.CategoryCache
	txManager postgres.TransactionManager
	eventBus  eventbus.Publisher
	logger    logger.Logger

	// generation counts invalidations; List only caches what it read
	// while the generation stood still.
	mu         sync.Mutex
	generation uint64
}

func NewCategoriesService(
	repo ports.CategoryRepository,
	cache ports.CategoryCache,
	txManager postgres.TransactionManager,
	eventBus eventbus.Publisher,
	logger logger.Logger,
) *CategoriesService {
	return &CategoriesService{
		repo:      repo,
		cache:     cache,
		txManager: txManager,
		eventBus:  eventBus,
		logger:    logger,
	}
}

func (s *CategoriesService) List(ctx context.Context) ([]*domain.Category, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}
	generation := s.currentGeneration()
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to list categories", "error", err)
		return nil, errInternal.WithInner(err)
	}

	s.mu.Lock()
	if s.generation == generation {
		s.cache.Set(ctx, list)
	}
	s.mu.Unlock()
	return list, nil
}

func (s *CategoriesService) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *CategoriesService) Create(ctx context.Context, actor *authz.Principal, rawName string) (*domain.Category, error) {
	if err := authzapp.Check(actor, authz.Admin()); err != nil {
		return nil, err
	}
	name, err := validateName(rawName)
	if err != nil {
		return nil, err
	}

	c := &domain.Category{Name: name}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, s.translate(ctx, "create", err)
	}

	s.changed(ctx, actor, c.ID, "created", 0)
	return c, nil
}

// Rename changes a category name. General keeps its name, though its
// casing may be normalised back to "General".
func (s *CategoriesService) Rename(ctx context.Context, actor *authz.Principal, id int64, rawName string) (*domain.Category, error) {
	if err := authzapp.Check(actor, authz.Admin()); err != nil {
		return nil, err
	}
	name, err := validateName(rawName)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, "rename", err)
	}
	if current.IsGeneral() != domain.IsGeneralName(name) {
		return nil, ErrGeneralProtected
	}

	if err := s.repo.Rename(ctx, id, name); err != nil {
		return nil, s.translate(ctx, "rename", err)
	}
	current.Name = name

	s.changed(ctx, actor, id, "updated", 0)
	return current, nil
}

// DeleteResult reports what a delete moved.
type DeleteResult struct {
	DeletedID    int64
	ReassignedTo int64
	MovedPosts   int64
}

// Delete reassigns the category's posts and removes it in one transaction.
// reassignTo of nil means General.
func (s *CategoriesService) Delete(ctx context.Context, actor *authz.Principal, id int64, reassignTo *int64) (*DeleteResult, error) {
	if err := authzapp.Check(actor, authz.Admin()); err != nil {
		return nil, err
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, "delete", err)
	}
	if target.IsGeneral() {
		return nil, ErrGeneralProtected
	}

	general, err := s.repo.FindGeneral(ctx)
	if errors.Is(err, ports.ErrCategoryNotFound) {
		return nil, ErrGeneralMissing
	}
	if err != nil {
		return nil, s.translate(ctx, "delete", err)
	}

	destination := general.ID
	if reassignTo != nil {
		if *reassignTo == id {
			return nil, ErrInvalidReassignTarget
		}
		if _, err := s.repo.FindByID(ctx, *reassignTo); err != nil {
			if errors.Is(err, ports.ErrCategoryNotFound) {
				return nil, ErrInvalidReassignTarget
			}
			return nil, s.translate(ctx, "delete", err)
		}
		destination = *reassignTo
	}

	result := &DeleteResult{DeletedID: id, ReassignedTo: destination}
	err = s.reassignAndDelete(ctx, result)
	if errors.Is(err, ports.ErrCategoryInUse) {
		// A post landed in the category between the move and the delete.
		s.logger.Warn(ctx, "category gained posts during delete, retrying", "category_id", id)
		err = s.reassignAndDelete(ctx, result)
	}
	if err != nil {
		return nil, s.translate(ctx, "delete", err)
	}

	s.logger.Info(ctx, "category deleted",
		"category_id", id,
		"reassigned_to", destination,
		"moved_posts", result.MovedPosts,
	)
	s.changed(ctx, actor, id, "deleted", destination)
	return result, nil
}

func (s *CategoriesService) reassignAndDelete(ctx context.Context, result *DeleteResult) error {
	return postgres.RunInTx(ctx, s.txManager, func(tx postgres.Transaction) error {
		txRepo := s.repo.WithTx(tx.Tx())
		moved, err := txRepo.ReassignPosts(ctx, result.DeletedID, result.ReassignedTo)
		if err != nil {
			return err
		}
		result.MovedPosts = moved
		return txRepo.Delete(ctx, result.DeletedID)
	})
}

// Invalidate drops the cached list; post writes change the counts.
func (s *CategoriesService) Invalidate(ctx context.Context) {
	s.invalidate(ctx)
	detached := context.WithoutCancel(ctx)
	time.AfterFunc(staleSetWindow, func() { s.invalidate(detached) })
}

func (s *CategoriesService) invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.cache.Invalidate(ctx)
}

func (s *CategoriesService) changed(ctx context.Context, actor *authz.Principal, id int64, action string, reassignedTo int64) {
	s.Invalidate(ctx)
	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.CategoriesChangedTopic,
		Payload: events.CategoriesChangedEvent{
			ActorID:      actor.ID,
			CategoryID:   id,
			Action:       action,
			ReassignedTo: reassignedTo,
			OccurredAt:   time.Now(),
		},
	})
}

func (s *CategoriesService) translate(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, ports.ErrCategoryNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, ports.ErrCategoryNameExists):
		return ErrNameExists
	case errors.Is(err, ports.ErrCategoryInUse):
		return ErrCategoryInUse
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	s.logger.Error(ctx, "category operation failed", "op", op, "error", err)
	return errInternal.WithInner(err)
}

func validateName(raw string) (string, error) {
	name, err := domain.NormalizeName(raw)
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return "", ErrNameRequired
	case errors.Is(err, domain.ErrNameTooLong):
		return "", ErrNameTooLong
	}
	return name, nil
}
