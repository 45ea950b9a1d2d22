package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shop-service/internal/domain"
)

func rentableProduct(id int64, pricePerDay float64) *domain.Product {
	return &domain.Product{ID: id, Name: "tent", Price: 100, PricePerDay: &pricePerDay}
}

func TestCreateRentalComputesPrice(t *testing.T) {
	var created *domain.Rental
	svc := NewRentalService(&fakeRentalRepo{
		createFn: func(_ context.Context, rental *domain.Rental) error {
			rental.ID = 1
			created = rental
			return nil
		},
	}, &fakeProductRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.Product, error) {
			return rentableProduct(2, 12.5), nil
		},
	})

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	rental, err := svc.Create(context.Background(), 7, 2, start, end)
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}
	if math.Abs(rental.TotalPrice-37.5) > 1e-9 {
		t.Errorf("TotalPrice = %v, want 37.5", rental.TotalPrice)
	}
	if rental.Status != domain.RentalStatusPending {
		t.Errorf("Status = %s, want pending", rental.Status)
	}
	if created.UserID != 7 || created.ProductID != 2 {
		t.Errorf("persisted rental = %+v", created)
	}
}

func TestCreateRentalRejectsNonRentableProduct(t *testing.T) {
	svc := NewRentalService(&fakeRentalRepo{}, &fakeProductRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.Product, error) {
			return &domain.Product{ID: 2, Name: "mug", Price: 9}, nil
		},
	})

	_, err := svc.Create(context.Background(), 7, 2, time.Now(), time.Now().AddDate(0, 0, 2))
	if err == nil {
		t.Fatal("Create rented a product without a daily rate")
	}
	if domainErr := domainErrorOf(t, err); domainErr.Code != "VALIDATION_FAILED" {
		t.Errorf("Code = %q, want VALIDATION_FAILED", domainErr.Code)
	}
}

func TestCreateRentalRejectsInvertedDates(t *testing.T) {
	svc := NewRentalService(&fakeRentalRepo{}, &fakeProductRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.Product, error) {
			return rentableProduct(2, 10), nil
		},
	})

	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	for _, end := range []time.Time{start, start.AddDate(0, 0, -1)} {
		if _, err := svc.Create(context.Background(), 7, 2, start, end); err == nil {
			t.Errorf("Create accepted end %v not after start %v", end, start)
		}
	}
}

func TestCreateRentalUnknownProduct(t *testing.T) {
	svc := NewRentalService(&fakeRentalRepo{}, &fakeProductRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.Product, error) {
			return nil, pgx.ErrNoRows
		},
	})

	_, err := svc.Create(context.Background(), 7, 404, time.Now(), time.Now().AddDate(0, 0, 1))
	if err == nil {
		t.Fatal("Create succeeded for a missing product")
	}
	if domainErr := domainErrorOf(t, err); domainErr.Code != "NOT_FOUND" {
		t.Errorf("Code = %q, want NOT_FOUND", domainErr.Code)
	}
}

func TestUpdateRentalRecomputesPriceOnDateChange(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.Rental{
		ID: 1, UserID: 7, ProductID: 2,
		StartDate: start, EndDate: start.AddDate(0, 0, 2),
		Status: domain.RentalStatusPending, TotalPrice: 20,
	}

	var updated *domain.Rental
	svc := NewRentalService(&fakeRentalRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.Rental, error) {
			copied := *existing
			return &copied, nil
		},
		updateFn: func(_ context.Context, rental *domain.Rental) error {
			updated = rental
			return nil
		},
	}, &fakeProductRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.Product, error) {
			return rentableProduct(2, 10), nil
		},
	})

	newEnd := start.AddDate(0, 0, 5)
	rental, err := svc.Update(context.Background(), 1, UpdateRentalInput{EndDate: &newEnd})
	if err != nil {
		t.Fatalf("Update error = %v", err)
	}
	if math.Abs(rental.TotalPrice-50) > 1e-9 {
		t.Errorf("TotalPrice = %v, want 50", rental.TotalPrice)
	}
	if updated == nil {
		t.Fatal("repository Update was not called")
	}
}

func TestUpdateRentalStatusOnly(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.Rental{
		ID: 1, ProductID: 2,
		StartDate: start, EndDate: start.AddDate(0, 0, 2),
		Status: domain.RentalStatusPending, TotalPrice: 20,
	}

	productLookups := 0
	svc := NewRentalService(&fakeRentalRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.Rental, error) {
			copied := *existing
			return &copied, nil
		},
	}, &fakeProductRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.Product, error) {
			productLookups++
			return rentableProduct(2, 10), nil
		},
	})

	status := domain.RentalStatusConfirmed
	rental, err := svc.Update(context.Background(), 1, UpdateRentalInput{Status: &status})
	if err != nil {
		t.Fatalf("Update error = %v", err)
	}
	if rental.Status != domain.RentalStatusConfirmed {
		t.Errorf("Status = %s, want confirmed", rental.Status)
	}
	if rental.TotalPrice != 20 {
		t.Errorf("TotalPrice = %v, want unchanged 20", rental.TotalPrice)
	}
	if productLookups != 0 {
		t.Errorf("product looked up %d times for a status-only change", productLookups)
	}
}

func TestUpdateRentalRejectsUnknownStatus(t *testing.T) {
	existing := &domain.Rental{ID: 1, ProductID: 2, Status: domain.RentalStatusPending}
	svc := NewRentalService(&fakeRentalRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.Rental, error) {
			copied := *existing
			return &copied, nil
		},
	}, &fakeProductRepo{})

	status := domain.RentalStatus("paused")
	if _, err := svc.Update(context.Background(), 1, UpdateRentalInput{Status: &status}); err == nil {
		t.Fatal("Update accepted an unknown status")
	}
}
