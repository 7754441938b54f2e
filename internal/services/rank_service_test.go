package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillradar/skillradar/internal/models"
	apperrors "github.com/skillradar/skillradar/pkg/errors"
)

func newTestRankService(t *testing.T) *RankService {
	t.Helper()

	svc, err := NewRankService(openTestDB(t))
	require.NoError(t, err)
	return svc
}

func TestCreateRankValidatesCategory(t *testing.T) {
	svc := newTestRankService(t)

	_, err := svc.Create(context.Background(), CreateRankInput{Category: "X", Level: "X1", Name: "bogus"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 400, appErr.StatusCode)
}

func TestRankListOrderedByCategoryAndLevel(t *testing.T) {
	svc := newTestRankService(t)

	_, err := svc.Create(context.Background(), CreateRankInput{Category: models.RankCategoryExpert, Level: "E1", Name: "资深工程师"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateRankInput{Category: models.RankCategoryFoundational, Level: "F2", Name: "中级工程师"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateRankInput{Category: models.RankCategoryFoundational, Level: "F1", Name: "初级工程师"})
	require.NoError(t, err)

	ranks, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ranks, 3)
	require.Equal(t, "F1", ranks[0].Level)
	require.Equal(t, "F2", ranks[1].Level)
	require.Equal(t, "E1", ranks[2].Level)
}

func TestUpdateRankKeepsCategoryAndLevel(t *testing.T) {
	svc := newTestRankService(t)

	rank, err := svc.Create(context.Background(), CreateRankInput{
		Category: models.RankCategoryFoundational, Level: "F3", Name: "高级工程师", Years: "5-8年",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), rank.ID, UpdateRankInput{
		Name:  "高级开发工程师",
		Years: "5-9年",
	})
	require.NoError(t, err)
	require.Equal(t, models.RankCategoryFoundational, updated.Category)
	require.Equal(t, "F3", updated.Level)
	require.Equal(t, "高级开发工程师", updated.Name)
	require.Equal(t, "5-9年", updated.Years)
}

func TestDeleteRankUnknownIDReturnsNotFound(t *testing.T) {
	svc := newTestRankService(t)

	require.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrRankNotFound)
}
