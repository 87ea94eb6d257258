package dao

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrItemConstraint  = errors.New("item violates a table constraint")
	ErrItemOutOfRange  = errors.New("item value is out of range")
	likeEscapeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

type Item struct {
	ID        uint      `gorm:"primaryKey"`
	ItemName  string    `gorm:"size:100;not null"`
	Quantity  int       `gorm:"not null;check:chk_items_quantity,quantity >= 0"`
	Price     float64   `gorm:"not null;check:chk_items_price,price >= 0"`
	Category  string    `gorm:"size:50;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return Item{}, translate(result.Error)
	}

	return item, nil
}

// storable reports whether id fits the bigint primary key. Larger ids can
// never match a row.
func storable(id uint) bool {
	return uint64(id) <= math.MaxInt64
}

func (d *ItemDAO) FindByID(ctx context.Context, id uint) (Item, error) {
	if !storable(id) {
		return Item{}, ErrItemNotFound
	}

	var item Item

	result := d.db.WithContext(ctx).First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) Exists(ctx context.Context, id uint) (bool, error) {
	if !storable(id) {
		return false, nil
	}

	var count int64

	result := d.db.WithContext(ctx).Model(&Item{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// FindAll lists items newest first. A non-empty search keeps items whose
// name contains it, ignoring case.
func (d *ItemDAO) FindAll(ctx context.Context, search string) ([]Item, error) {
	var items []Item

	query := d.db.WithContext(ctx).Order("id DESC")
	if search != "" {
		query = query.Where("item_name ILIKE ?", "%"+likeEscapeReplacer.Replace(search)+"%")
	}

	result := query.Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Update writes the given columns of one row in a single statement.
func (d *ItemDAO) Update(ctx context.Context, id uint, columns map[string]interface{}) error {
	if !storable(id) {
		return ErrItemNotFound
	}

	result := d.db.WithContext(ctx).Model(&Item{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (d *ItemDAO) SetQuantity(ctx context.Context, id uint, quantity int) error {
	return d.updateQuantity(ctx, id, quantity)
}

// AddQuantity shifts the quantity by delta, never below zero. The sum is
// taken as numeric and capped at the bigint maximum.
func (d *ItemDAO) AddQuantity(ctx context.Context, id uint, delta int) error {
	return d.updateQuantity(ctx, id, gorm.Expr("LEAST(GREATEST(quantity::numeric + ?, 0), ?)", delta, int64(math.MaxInt64)))
}

func (d *ItemDAO) updateQuantity(ctx context.Context, id uint, value interface{}) error {
	if !storable(id) {
		return ErrItemNotFound
	}

	result := d.db.WithContext(ctx).Model(&Item{}).Where("id = ?", id).Update("quantity", value)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (d *ItemDAO) Delete(ctx context.Context, id uint) error {
	if !storable(id) {
		return ErrItemNotFound
	}

	result := d.db.WithContext(ctx).Delete(&Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.CheckViolation:
		return ErrItemConstraint
	case pgerrcode.NumericValueOutOfRange:
		return ErrItemOutOfRange
	default:
		return err
	}
}
