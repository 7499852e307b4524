package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizops/internal/api/dto"
	"bizops/internal/model"
	"bizops/internal/repository"
)

func TestPOInstructionService_ScopedByCorporation(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewPOInstructionService(repository.NewCRUDRepository[model.POInstruction](db), newAudit(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, testCaller, dto.POInstructionReq{CorporationUUID: "corp-1", POInstructionName: "Delivery", Instruction: "Call ahead"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, testCaller, dto.POInstructionReq{CorporationUUID: "corp-1", POInstructionName: "Old", Instruction: "n/a", Status: model.StatusInactive})
	require.NoError(t, err)
	// same name in another corporation is allowed
	_, err = svc.Create(ctx, testCaller, dto.POInstructionReq{CorporationUUID: "corp-2", POInstructionName: "Delivery", Instruction: "Gate 3"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, testCaller, dto.POInstructionReq{CorporationUUID: "corp-1", POInstructionName: "Delivery", Instruction: "dup"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	list, err := svc.List(ctx, dto.CorporationQuery{CorporationUUID: "corp-1"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	active, err := svc.List(ctx, dto.CorporationQuery{CorporationUUID: "corp-1", Status: model.StatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Delivery", active[0].POInstructionName)
}

func TestTermsService_IsActiveFilter(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewTermsService(repository.NewCRUDRepository[model.TermsAndCondition](db), newAudit(db))
	ctx := context.Background()

	std, err := svc.Create(ctx, testCaller, dto.TermsAndConditionReq{CorporationUUID: "corp-1", Name: "Standard", Content: "Net 30"})
	require.NoError(t, err)
	assert.True(t, std.IsActive)
	_, err = svc.Create(ctx, testCaller, dto.TermsAndConditionReq{CorporationUUID: "corp-1", Name: "Legacy", Content: "Net 60", IsActive: boolPtr(false)})
	require.NoError(t, err)

	inactive, err := svc.List(ctx, dto.CorporationQuery{CorporationUUID: "corp-1", IsActive: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Legacy", inactive[0].Name)

	none, err := svc.List(ctx, dto.CorporationQuery{CorporationUUID: "corp-9"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
