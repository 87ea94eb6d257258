package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/inventory-api/internal/domain"
	"github.com/vietanh2810/inventory-api/internal/repository/dao"
)

type mockItemDAO struct {
	mock.Mock
}

func (m *mockItemDAO) Insert(ctx context.Context, item dao.Item) (dao.Item, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(dao.Item), args.Error(1)
}

func (m *mockItemDAO) FindByID(ctx context.Context, id uint) (dao.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dao.Item), args.Error(1)
}

func (m *mockItemDAO) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockItemDAO) FindAll(ctx context.Context, search string) ([]dao.Item, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]dao.Item), args.Error(1)
}

func (m *mockItemDAO) Update(ctx context.Context, id uint, columns map[string]interface{}) error {
	return m.Called(ctx, id, columns).Error(0)
}

func (m *mockItemDAO) SetQuantity(ctx context.Context, id uint, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *mockItemDAO) AddQuantity(ctx context.Context, id uint, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *mockItemDAO) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func TestItemRepositoryCreate(t *testing.T) {
	d := new(mockItemDAO)
	created := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)
	d.On("Insert", mock.Anything, dao.Item{ItemName: "Rice", Quantity: 2, Price: 1.5}).
		Return(dao.Item{ID: 1, ItemName: "Rice", Quantity: 2, Price: 1.5, CreatedAt: created}, nil)

	item, err := NewItemRepository(d).Create(context.Background(), domain.Item{ItemName: "Rice", Quantity: 2, Price: 1.5})
	require.NoError(t, err)
	assert.Equal(t, domain.Item{ID: 1, ItemName: "Rice", Quantity: 2, Price: 1.5, CreatedAt: created}, item)
}

func TestItemRepositoryUpdateSendsOnlyPatchedColumns(t *testing.T) {
	d := new(mockItemDAO)
	d.On("Update", mock.Anything, uint(4), map[string]interface{}{"quantity": 3, "category": ""}).Return(nil)

	patch, err := domain.BuildPatch(domain.RawItemFields{Quantity: ptr("3"), Category: ptr("")})
	require.NoError(t, err)

	require.NoError(t, NewItemRepository(d).Update(context.Background(), 4, patch))
	d.AssertExpectations(t)
}

func TestItemRepositoryAdjustQuantity(t *testing.T) {
	d := new(mockItemDAO)
	d.On("SetQuantity", mock.Anything, uint(1), 8).Return(nil)
	d.On("AddQuantity", mock.Anything, uint(1), -2).Return(dao.ErrItemNotFound)
	repo := NewItemRepository(d)

	require.NoError(t, repo.AdjustQuantity(context.Background(), 1, domain.QuantityAdjustment{Mode: domain.QuantityModeSet, Value: 8}))

	err := repo.AdjustQuantity(context.Background(), 1, domain.QuantityAdjustment{Mode: domain.QuantityModeDelta, Value: -2})
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.Error(t, repo.AdjustQuantity(context.Background(), 1, domain.QuantityAdjustment{Mode: "double"}))
	d.AssertExpectations(t)
}

func ptr(s string) *string {
	return &s
}
