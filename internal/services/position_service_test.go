package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillradar/skillradar/internal/models"
)

func newTestPositionService(t *testing.T) *PositionService {
	t.Helper()

	db := openTestDB(t)
	svc, err := NewPositionService(db, newTestAuditService(t, db))
	require.NoError(t, err)
	return svc
}

func TestCreatePositionWithDimensions(t *testing.T) {
	svc := newTestPositionService(t)

	position, err := svc.Create(context.Background(), CreatePositionInput{
		Code:  "FE",
		Name:  "前端工程师",
		Ranks: "F1-E3",
		AbilityDimensions: []DimensionInput{
			{Code: "FE-D1", Title: "工程能力", Scores: map[string]int{"F1": 60, "F2": 70}},
			{Code: "FE-D2", Title: "技术深度", Scores: map[string]int{"F1": 50}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "FE", position.Code)
	require.Equal(t, models.PositionStatusActive, position.Status)
	require.Len(t, position.AbilityDimensions, 2)

	scores := position.AbilityDimensions[0].Scores.Data()
	require.Equal(t, 60, scores["F1"])
}

func TestCreatePositionRejectsDuplicateCode(t *testing.T) {
	svc := newTestPositionService(t)

	_, err := svc.Create(context.Background(), CreatePositionInput{Code: "BE", Name: "后端工程师"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreatePositionInput{Code: "BE", Name: "另一个"})
	require.ErrorIs(t, err, ErrPositionCodeExists)
}

func TestUpdatePositionReplacesDimensionSet(t *testing.T) {
	svc := newTestPositionService(t)

	created, err := svc.Create(context.Background(), CreatePositionInput{
		Code: "QA",
		Name: "测试工程师",
		AbilityDimensions: []DimensionInput{
			{Code: "QA-D1", Title: "用例设计"},
			{Code: "QA-D2", Title: "自动化"},
		},
	})
	require.NoError(t, err)

	oldIDs := map[string]bool{}
	for _, dim := range created.AbilityDimensions {
		oldIDs[dim.ID] = true
	}

	updated, err := svc.Update(context.Background(), created.ID, UpdatePositionInput{
		Name:   "测试开发工程师",
		Status: models.PositionStatusInactive,
		AbilityDimensions: []DimensionInput{
			{Code: "QA-D3", Title: "质量体系", Scores: map[string]int{"E1": 85}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "测试开发工程师", updated.Name)
	require.Equal(t, models.PositionStatusInactive, updated.Status)

	// full replace: old rows gone, survivors carry fresh identifiers
	require.Len(t, updated.AbilityDimensions, 1)
	require.Equal(t, "QA-D3", updated.AbilityDimensions[0].Code)
	require.False(t, oldIDs[updated.AbilityDimensions[0].ID])

	var remaining int64
	require.NoError(t, svc.db.Model(&models.AbilityDimension{}).Count(&remaining).Error)
	require.EqualValues(t, 1, remaining)
}

func TestDeletePositionCascadesToDimensions(t *testing.T) {
	svc := newTestPositionService(t)

	created, err := svc.Create(context.Background(), CreatePositionInput{
		Code: "SRE",
		Name: "运维工程师",
		AbilityDimensions: []DimensionInput{
			{Code: "SRE-D1", Title: "稳定性"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrPositionNotFound)

	var orphans int64
	require.NoError(t, svc.db.Model(&models.AbilityDimension{}).
		Where("position_id = ?", created.ID).Count(&orphans).Error)
	require.EqualValues(t, 0, orphans)
}

func TestPositionStatusDefaultsToActive(t *testing.T) {
	svc := newTestPositionService(t)

	position, err := svc.Create(context.Background(), CreatePositionInput{Code: "PM", Name: "项目经理", Status: "bogus"})
	require.NoError(t, err)
	require.Equal(t, models.PositionStatusActive, position.Status)
}
