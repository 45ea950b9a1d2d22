package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shop-service/internal/domain"
)

type fakeUserRepo struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.createFn == nil {
		user.ID = 1
		return nil
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if f.getByIDFn == nil {
		return nil, pgx.ErrNoRows
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getByEmailFn == nil {
		return nil, pgx.ErrNoRows
	}
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

type fakeProductRepo struct {
	createFn  func(ctx context.Context, product *domain.Product) error
	updateFn  func(ctx context.Context, product *domain.Product) error
	getByIDFn func(ctx context.Context, id int64) (*domain.Product, error)
	listFn    func(ctx context.Context) ([]domain.Product, error)
	deleteFn  func(ctx context.Context, id int64) error
	countFn   func(ctx context.Context) (int64, error)
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	if f.createFn == nil {
		product.ID = 1
		return nil
	}
	return f.createFn(ctx, product)
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, product)
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if f.getByIDFn == nil {
		return nil, pgx.ErrNoRows
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx)
}

type fakeVariantRepo struct {
	createFn        func(ctx context.Context, variant *domain.Variant) error
	updateFn        func(ctx context.Context, variant *domain.Variant) error
	getByIDFn       func(ctx context.Context, id int64) (*domain.Variant, error)
	listByProductFn func(ctx context.Context, productID int64) ([]domain.Variant, error)
	deleteFn        func(ctx context.Context, id int64) error
	countFn         func(ctx context.Context) (int64, error)
}

func (f *fakeVariantRepo) Create(ctx context.Context, variant *domain.Variant) error {
	if f.createFn == nil {
		variant.ID = 1
		return nil
	}
	return f.createFn(ctx, variant)
}

func (f *fakeVariantRepo) Update(ctx context.Context, variant *domain.Variant) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, variant)
}

func (f *fakeVariantRepo) GetByID(ctx context.Context, id int64) (*domain.Variant, error) {
	if f.getByIDFn == nil {
		return nil, pgx.ErrNoRows
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeVariantRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Variant, error) {
	if f.listByProductFn == nil {
		return nil, nil
	}
	return f.listByProductFn(ctx, productID)
}

func (f *fakeVariantRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeVariantRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx)
}

type fakeCartRepo struct {
	getOrCreateFn func(ctx context.Context, userID int64) (*domain.Cart, error)
	upsertItemFn  func(ctx context.Context, cartID, productID, variantID int64) (*domain.CartItem, error)
	listEntriesFn func(ctx context.Context, cartID int64) ([]domain.CartEntry, error)
}

func (f *fakeCartRepo) GetOrCreate(ctx context.Context, userID int64) (*domain.Cart, error) {
	if f.getOrCreateFn == nil {
		return &domain.Cart{ID: 1, UserID: userID}, nil
	}
	return f.getOrCreateFn(ctx, userID)
}

func (f *fakeCartRepo) UpsertItem(ctx context.Context, cartID, productID, variantID int64) (*domain.CartItem, error) {
	if f.upsertItemFn == nil {
		return &domain.CartItem{ID: 1, CartID: cartID, ProductID: productID, VariantID: variantID, Quantity: 1}, nil
	}
	return f.upsertItemFn(ctx, cartID, productID, variantID)
}

func (f *fakeCartRepo) ListEntries(ctx context.Context, cartID int64) ([]domain.CartEntry, error) {
	if f.listEntriesFn == nil {
		return nil, nil
	}
	return f.listEntriesFn(ctx, cartID)
}

type fakeRentalRepo struct {
	createFn  func(ctx context.Context, rental *domain.Rental) error
	updateFn  func(ctx context.Context, rental *domain.Rental) error
	getByIDFn func(ctx context.Context, id int64) (*domain.Rental, error)
	listFn    func(ctx context.Context) ([]domain.Rental, error)
}

func (f *fakeRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	if f.createFn == nil {
		rental.ID = 1
		return nil
	}
	return f.createFn(ctx, rental)
}

func (f *fakeRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, rental)
}

func (f *fakeRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	if f.getByIDFn == nil {
		return nil, pgx.ErrNoRows
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

type fakeAuditLogRepo struct {
	createFn func(ctx context.Context, record *domain.AuditLog) error
	listFn   func(ctx context.Context, limit int) ([]domain.AuditLog, error)
	records  []domain.AuditLog
}

func (f *fakeAuditLogRepo) Create(ctx context.Context, record *domain.AuditLog) error {
	if f.createFn != nil {
		return f.createFn(ctx, record)
	}
	record.ID = int64(len(f.records) + 1)
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeAuditLogRepo) List(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if f.listFn != nil {
		return f.listFn(ctx, limit)
	}
	return f.records, nil
}
