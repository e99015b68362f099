package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mercapos/mercapos_backend/internal/apperrors"
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portsrepo "github.com/mercapos/mercapos_backend/internal/core/ports/repositories"
	portssvc "github.com/mercapos/mercapos_backend/internal/core/ports/services"
	"github.com/mercapos/mercapos_backend/internal/dto"
)

// maxSalesPageSize caps a sale listing regardless of the requested window.
const maxSalesPageSize = 1000

type saleService struct {
	BaseService
	saleRepo    portsrepo.SaleRepositoryFacade
	productRepo portsrepo.ProductReader
}

// NewSaleService creates the sale transaction processor.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, productRepo portsrepo.ProductReader) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo, productRepo: productRepo}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// RecordSale validates the cart in input order, freezes a snapshot of every
// line and persists the sale. The repository re-checks stock under row locks,
// so this pre-validation only exists to fail fast with a precise message
// before a transaction is opened.
func (s *saleService) RecordSale(ctx context.Context, ownerID domain.OwnerID, req dto.CreateSaleRequest) (*domain.Sale, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: a sale needs at least one item", apperrors.ErrValidation)
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unsupported payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}

	items := make([]domain.SaleLineItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for product %s", apperrors.ErrValidation, line.ProductID)
		}

		product, err := s.productRepo.FindProductByID(ctx, ownerID, line.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %s not found", apperrors.ErrNotFound, line.ProductID)
			}
			return nil, err
		}
		if product.StockQuantity < line.Quantity {
			return nil, fmt.Errorf("%w: %s has %d units", apperrors.ErrInsufficientStock, product.Name, product.StockQuantity)
		}

		items = append(items, domain.SaleLineItem{
			ProductID:   product.ProductID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			PriceAtSale: product.SalePrice,
			CostAtSale:  product.CostPrice,
		})
	}

	totalAmount, totalCost := domain.TotalsFromItems(items)

	amountReceived := totalAmount
	if req.AmountReceived != nil {
		amountReceived = *req.AmountReceived
	}

	sale := domain.Sale{
		SaleID:         uuid.NewString(),
		OwnerID:        ownerID,
		Items:          items,
		TotalAmount:    totalAmount,
		Profit:         totalAmount.Sub(totalCost),
		PaymentMethod:  method,
		AmountReceived: amountReceived,
		ChangeGiven:    amountReceived.Sub(totalAmount),
		OccurredAt:     time.Now().UTC(),
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to record sale", slog.String("sale_id", sale.SaleID))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("payment_method", string(method)),
		slog.String("total_amount", totalAmount.String()))
	return &sale, nil
}

// ListSales retrieves sales within an inclusive calendar-day window,
// newest-first.
func (s *saleService) ListSales(ctx context.Context, ownerID domain.OwnerID, params dto.ListSalesParams) ([]domain.Sale, error) {
	filter := portsrepo.SaleFilter{Limit: maxSalesPageSize}

	if params.StartDate != nil {
		from := startOfDay(*params.StartDate)
		filter.From = &from
	}
	if params.EndDate != nil {
		// The end date is inclusive, so the window runs to the next midnight.
		to := startOfDay(*params.EndDate).Add(24 * time.Hour)
		filter.To = &to
	}

	sales, err := s.saleRepo.FindSales(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, err
	}
	return sales, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
