package usecase

import (
	"context"
	"testing"

	"vstore-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	repo := newFakeOrderRepo()
	orderUC := newTestOrderUC(repo)
	uc := NewSearchUsecase(repo)

	order := mustCreateOrder(t, orderUC)

	results, err := uc.Lookup(context.Background(), "9876543210", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, order.ID, results[0].ID)
}

func TestLookup_StripsInternalFields(t *testing.T) {
	repo := newFakeOrderRepo()
	orderUC := newTestOrderUC(repo)
	uc := NewSearchUsecase(repo)

	order := mustCreateOrder(t, orderUC)
	notes := "do not upsell"
	_, err := orderUC.ApplyEdit(context.Background(), adminActor, order.ID, OrderPatch{AdminNotes: &notes})
	require.NoError(t, err)

	results, err := uc.Lookup(context.Background(), order.ID, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].AdminNotes)
}

func TestLookup_QueryTooShort(t *testing.T) {
	uc := NewSearchUsecase(newFakeOrderRepo())

	_, err := uc.Lookup(context.Background(), "ab", 10)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
