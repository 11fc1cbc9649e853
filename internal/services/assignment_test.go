package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

func TestAssign_RequiresWriterID(t *testing.T) {
	env := newTestEnv()
	order, _, _ := env.seedOrder(constants.StatusPaid, false)

	_, err := env.engine.Transition(context.Background(), order.ID, constants.ActionAssign, env.admin(), TransitionPayload{})

	var missing *apperrors.MissingPrerequisiteError
	require.ErrorAs(t, err, &missing)
}

func TestAssign_UnknownWriter(t *testing.T) {
	env := newTestEnv()
	order, _, _ := env.seedOrder(constants.StatusPaid, false)
	ghost := uuid.New()

	_, err := env.engine.Transition(context.Background(), order.ID, constants.ActionAssign, env.admin(), TransitionPayload{WriterID: &ghost})

	var missing *apperrors.MissingPrerequisiteError
	require.ErrorAs(t, err, &missing)

	stored, _ := env.orderRepo.FindByID(context.Background(), nil, order.ID)
	assert.Equal(t, constants.StatusPaid, stored.Status)
	assert.Nil(t, stored.WriterID)
}

func TestAssign_TargetMustHoldWriterRole(t *testing.T) {
	env := newTestEnv()
	order, _, _ := env.seedOrder(constants.StatusPaid, false)
	plainUserID := env.userRepo.add("user")

	_, err := env.engine.Transition(context.Background(), order.ID, constants.ActionAssign, env.admin(), TransitionPayload{WriterID: &plainUserID})

	var missing *apperrors.MissingPrerequisiteError
	require.ErrorAs(t, err, &missing)
}

func TestAssign_FromAssignmentQueueStatuses(t *testing.T) {
	for _, status := range []string{
		constants.StatusPaid,
		constants.StatusAwaitingAssignment,
		constants.StatusAwaitingAssignmentRejected,
	} {
		t.Run(status, func(t *testing.T) {
			env := newTestEnv()
			order, _, writer := env.seedOrder(status, false)

			updated, err := env.engine.Transition(context.Background(), order.ID, constants.ActionAssign, env.admin(), TransitionPayload{WriterID: &writer.ID})
			require.NoError(t, err)
			assert.Equal(t, constants.StatusAwaitingAsignAcceptance, updated.Status)
			require.NotNil(t, updated.WriterID)
			assert.Equal(t, writer.ID, *updated.WriterID)
		})
	}
}
