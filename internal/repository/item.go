package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/inventory-api/internal/domain"
	"github.com/vietanh2810/inventory-api/internal/repository/dao"
)

var (
	ErrItemNotFound   = dao.ErrItemNotFound
	ErrItemConstraint = dao.ErrItemConstraint
	ErrItemOutOfRange = dao.ErrItemOutOfRange
)

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	FindByID(ctx context.Context, id uint) (dao.Item, error)
	Exists(ctx context.Context, id uint) (bool, error)
	FindAll(ctx context.Context, search string) ([]dao.Item, error)
	Update(ctx context.Context, id uint, columns map[string]interface{}) error
	SetQuantity(ctx context.Context, id uint, quantity int) error
	AddQuantity(ctx context.Context, id uint, delta int) error
	Delete(ctx context.Context, id uint) error
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uint) (domain.Item, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ItemRepository) Exists(ctx context.Context, id uint) (bool, error) {
	exists, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *ItemRepository) List(ctx context.Context, search string) ([]domain.Item, error) {
	found, err := r.dao.FindAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ItemRepository) Update(ctx context.Context, id uint, patch domain.ItemPatch) error {
	if err := r.dao.Update(ctx, id, patch.Values()); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *ItemRepository) AdjustQuantity(ctx context.Context, id uint, adj domain.QuantityAdjustment) error {
	var err error
	switch adj.Mode {
	case domain.QuantityModeSet:
		err = r.dao.SetQuantity(ctx, id, adj.Value)
	case domain.QuantityModeDelta:
		err = r.dao.AddQuantity(ctx, id, adj.Value)
	default:
		return fmt.Errorf("unknown quantity mode %q", adj.Mode)
	}
	if err != nil {
		return fmt.Errorf("r.dao.AdjustQuantity -> %w", err)
	}

	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ItemRepository) domainToDao(item domain.Item) dao.Item {
	return dao.Item{
		ID:        item.ID,
		ItemName:  item.ItemName,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Category:  item.Category,
		CreatedAt: item.CreatedAt,
	}
}

func (r *ItemRepository) daoToDomain(item dao.Item) domain.Item {
	return domain.Item{
		ID:        item.ID,
		ItemName:  item.ItemName,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Category:  item.Category,
		CreatedAt: item.CreatedAt,
	}
}

func (r *ItemRepository) daosToDomain(items []dao.Item) []domain.Item {
	domainItems := make([]domain.Item, len(items))
	for i, item := range items {
		domainItems[i] = r.daoToDomain(item)
	}

	return domainItems
}
