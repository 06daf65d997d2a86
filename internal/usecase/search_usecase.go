package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vstore-backend/internal/domain"
)

const searchTimeout = 3 * time.Second

type SearchUsecase struct {
	orders domain.OrderRepository
}

func NewSearchUsecase(orders domain.OrderRepository) *SearchUsecase {
	return &SearchUsecase{orders: orders}
}

// Lookup powers the public order tracking box: a customer pastes an order id
// or their mobile number and gets back matching orders with internal fields
// stripped.
func (uc *SearchUsecase) Lookup(ctx context.Context, query string, limit int) ([]domain.Order, error) {
	query = strings.TrimSpace(query)
	if len(query) < 3 {
		return nil, fmt.Errorf("%w: search query must be at least 3 characters", domain.ErrValidation)
	}
	if limit < 1 || limit > 25 {
		limit = 10
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	orders, err := uc.orders.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	public := make([]domain.Order, 0, len(orders))
	for i := range orders {
		public = append(public, *orders[i].Public())
	}
	return public, nil
}
