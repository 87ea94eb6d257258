package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/inventory-api/internal/domain"
	"github.com/vietanh2810/inventory-api/internal/repository"
)

var (
	ErrItemNotFound     = repository.ErrItemNotFound
	ErrItemConstraint   = repository.ErrItemConstraint
	ErrItemOutOfRange   = repository.ErrItemOutOfRange
	ErrNoFieldsProvided = domain.ErrNoFieldsProvided
	ErrAmbiguousMode    = domain.ErrAmbiguousMode
	ErrMissingMode      = domain.ErrMissingMode
)

type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	FindByID(ctx context.Context, id uint) (domain.Item, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, search string) ([]domain.Item, error)
	Update(ctx context.Context, id uint, patch domain.ItemPatch) error
	AdjustQuantity(ctx context.Context, id uint, adj domain.QuantityAdjustment) error
	Delete(ctx context.Context, id uint) error
}

// ItemNotifier receives every committed mutation. Publish must not block.
type ItemNotifier interface {
	Publish(event domain.ItemEvent)
}

type UpdateResult struct {
	UpdatedFields []string
	Item          domain.Item
}

type QuantityResult struct {
	Mode     domain.QuantityMode
	Value    int
	Input    string
	Quantity int
}

type ValidationResult struct {
	Operation domain.Operation
	Data      map[string]interface{}
}

type ItemService struct {
	repo     ItemRepository
	notifier ItemNotifier
	now      func() time.Time
}

func NewItemService(repo ItemRepository, notifier ItemNotifier) *ItemService {
	return &ItemService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *ItemService) CreateItem(ctx context.Context, raw domain.RawItemFields) (domain.Item, error) {
	item, err := domain.NewItem(raw)
	if err != nil {
		return domain.Item{}, err
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("item created", zap.Uint("id", created.ID), zap.String("item_name", created.ItemName))
	s.publish(domain.ItemCreated, created.ID, &created)

	return created, nil
}

func (s *ItemService) GetItem(ctx context.Context, id uint) (domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return item, nil
}

func (s *ItemService) ListItems(ctx context.Context, search string) ([]domain.Item, error) {
	items, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return items, nil
}

// UpdateItem applies the supplied fields of raw to item id, all of them or none.
func (s *ItemService) UpdateItem(ctx context.Context, id uint, raw domain.RawItemFields) (UpdateResult, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return UpdateResult{}, err
	}

	patch, err := domain.BuildPatch(raw)
	if err != nil {
		return UpdateResult{}, err
	}

	if err = s.repo.Update(ctx, id, patch); err != nil {
		return UpdateResult{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	zap.L().Info("item updated", zap.Uint("id", id), zap.Strings("fields", patch.Columns()))
	s.publish(domain.ItemUpdated, id, &updated)

	return UpdateResult{
		UpdatedFields: patch.Columns(),
		Item:          updated,
	}, nil
}

// AdjustQuantity sets or shifts the quantity of item id and reports the
// quantity read back from the store.
func (s *ItemService) AdjustQuantity(ctx context.Context, id uint, adj domain.QuantityAdjustment) (QuantityResult, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return QuantityResult{}, err
	}

	if err := s.repo.AdjustQuantity(ctx, id, adj); err != nil {
		return QuantityResult{}, fmt.Errorf("s.repo.AdjustQuantity -> %w", err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return QuantityResult{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	zap.L().Info("item quantity adjusted",
		zap.Uint("id", id),
		zap.String("mode", string(adj.Mode)),
		zap.Int("value", adj.Value),
		zap.Int("quantity", updated.Quantity),
	)
	s.publish(domain.ItemQuantityChanged, id, &updated)

	return QuantityResult{
		Mode:     adj.Mode,
		Value:    adj.Value,
		Input:    adj.Raw,
		Quantity: updated.Quantity,
	}, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	zap.L().Info("item deleted", zap.Uint("id", id))
	s.publish(domain.ItemDeleted, id, nil)

	return nil
}

// ValidateItem runs the create or update checks without writing anything and
// reports every failure at once as domain.ValidationErrors.
func (s *ItemService) ValidateItem(ctx context.Context, rawID *string, raw domain.RawItemFields) (ValidationResult, error) {
	var errs domain.ValidationErrors
	data := map[string]interface{}{}

	target, err := domain.ParseValidationTarget(rawID)
	if err != nil {
		vErr, ok := domain.AsValidationError(err)
		if !ok {
			return ValidationResult{}, err
		}
		errs = append(errs, vErr)
	} else if target.Operation == domain.OperationUpdate {
		data[domain.FieldID] = target.ID

		exists, err := s.repo.Exists(ctx, target.ID)
		if err != nil {
			return ValidationResult{}, fmt.Errorf("s.repo.Exists -> %w", err)
		}
		if !exists {
			errs = append(errs, domain.NewValidationError(domain.FieldID, domain.CodeUnknownID))
		}
	}

	switch target.Operation {
	case domain.OperationCreate:
		errs = append(errs, domain.MissingRequired(raw)...)
	case domain.OperationUpdate:
		if raw.IsEmpty() {
			errs = append(errs, domain.NewValidationError(domain.FieldID, domain.CodeNoFields))
		}
	}

	patch, fieldErrs := domain.CollectPatch(raw)
	errs = append(errs, fieldErrs...)
	for _, f := range patch.Fields() {
		data[f.Column] = f.Value
	}

	result := ValidationResult{Operation: target.Operation, Data: data}
	if len(errs) > 0 {
		return result, errs
	}

	return result, nil
}

func (s *ItemService) mustExist(ctx context.Context, id uint) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !exists {
		return ErrItemNotFound
	}

	return nil
}

func (s *ItemService) publish(eventType domain.ItemEventType, id uint, item *domain.Item) {
	if s.notifier == nil {
		return
	}

	s.notifier.Publish(domain.ItemEvent{
		Type:   eventType,
		ItemID: id,
		Item:   item,
		At:     s.now(),
	})
}

// IsClientError reports whether err is the caller's fault rather than the store's.
func IsClientError(err error) bool {
	if _, ok := domain.AsValidationError(err); ok {
		return true
	}

	var errs domain.ValidationErrors
	return errors.As(err, &errs) ||
		errors.Is(err, ErrNoFieldsProvided) ||
		errors.Is(err, ErrAmbiguousMode) ||
		errors.Is(err, ErrMissingMode) ||
		errors.Is(err, ErrItemConstraint) ||
		errors.Is(err, ErrItemOutOfRange)
}
