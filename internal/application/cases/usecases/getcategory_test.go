package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

func TestGetCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	categories := &mockCategoryDirectory{}
	categories.On("GetByID", mock.Anything, uint(3)).Return(category.ReconstructCategory(3, "Billing", "invoices", "#FF0000"), nil)
	categories.On("GetByID", mock.Anything, uint(9)).Return(nil, nil)

	uc := NewGetCategoryUseCase(categories, logger.NewNopLogger())

	got, err := uc.Execute(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Billing", got.Name)
	assert.Equal(t, "#FF0000", got.ColorCode)

	_, err = uc.Execute(ctx, 9)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
