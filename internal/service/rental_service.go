package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/repository"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// UpdateRentalInput patches rental fields; nil means "leave unchanged".
type UpdateRentalInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *domain.RentalStatus
}

// RentalService books products for date ranges.
type RentalService struct {
	rentals  repository.RentalRepository
	products repository.ProductRepository
}

// NewRentalService builds the service.
func NewRentalService(rentals repository.RentalRepository, products repository.ProductRepository) *RentalService {
	return &RentalService{rentals: rentals, products: products}
}

// Create books a product. Total price is whole days times the product's
// daily rate; products without a daily rate cannot be rented.
func (s *RentalService) Create(ctx context.Context, userID, productID int64, start, end time.Time) (*domain.Rental, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product", map[string]any{"product_id": productID})
		}
		return nil, err
	}
	if product.PricePerDay == nil {
		return nil, apperrors.NewValidationError("product is not rentable", map[string]any{"product_id": productID})
	}

	total, err := rentalPrice(start, end, *product.PricePerDay)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		UserID:     userID,
		ProductID:  productID,
		StartDate:  start,
		EndDate:    end,
		Status:     domain.RentalStatusPending,
		TotalPrice: total,
	}
	if err := s.rentals.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

// List returns all rentals.
func (s *RentalService) List(ctx context.Context) ([]domain.Rental, error) {
	return s.rentals.List(ctx)
}

// Get loads one rental.
func (s *RentalService) Get(ctx context.Context, id int64) (*domain.Rental, error) {
	rental, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("rental", map[string]any{"rental_id": id})
		}
		return nil, err
	}
	return rental, nil
}

// Update patches a rental; changed dates recompute the total price.
func (s *RentalService) Update(ctx context.Context, id int64, input UpdateRentalInput) (*domain.Rental, error) {
	rental, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	datesChanged := false
	if input.StartDate != nil {
		rental.StartDate = *input.StartDate
		datesChanged = true
	}
	if input.EndDate != nil {
		rental.EndDate = *input.EndDate
		datesChanged = true
	}
	if input.Status != nil {
		switch *input.Status {
		case domain.RentalStatusPending, domain.RentalStatusConfirmed, domain.RentalStatusCancelled:
			rental.Status = *input.Status
		default:
			return nil, apperrors.NewValidationError("unknown rental status", map[string]any{"status": *input.Status})
		}
	}

	if datesChanged {
		product, err := s.products.GetByID(ctx, rental.ProductID)
		if err != nil {
			return nil, err
		}
		if product.PricePerDay == nil {
			return nil, apperrors.NewValidationError("product is not rentable", map[string]any{"product_id": rental.ProductID})
		}
		total, err := rentalPrice(rental.StartDate, rental.EndDate, *product.PricePerDay)
		if err != nil {
			return nil, err
		}
		rental.TotalPrice = total
	}

	if err := s.rentals.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func rentalPrice(start, end time.Time, pricePerDay float64) (float64, error) {
	days := end.Sub(start).Hours() / 24
	if days <= 0 {
		return 0, apperrors.NewValidationError("end date must be after start date", nil)
	}
	return days * pricePerDay, nil
}
