package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

func TestSubmitWork_RecordsPendingSubmission(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	order, _, writer := env.seedOrder(constants.StatusInProgress, true)

	updated, err := env.engine.Transition(ctx, order.ID, constants.ActionSubmitWork, writer,
		TransitionPayload{FileURL: "/uploads/submissions/draft1.docx", Note: "first draft"})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusSubmittedForReview, updated.Status)

	subs, err := env.submissions.List(ctx, order.ID, writer)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, constants.SubmissionPendingReview, subs[0].Status)
	assert.Equal(t, "/uploads/submissions/draft1.docx", subs[0].FileURL)
	assert.Equal(t, "first draft", subs[0].Note)
	assert.Equal(t, writer.ID, subs[0].WriterID)
}

func TestSubmitWork_RequiresFile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	order, _, writer := env.seedOrder(constants.StatusInProgress, true)

	_, err := env.engine.Transition(ctx, order.ID, constants.ActionSubmitWork, writer, TransitionPayload{})

	var missing *apperrors.MissingPrerequisiteError
	require.ErrorAs(t, err, &missing)

	// the failed transition must leave no submission row and no status move
	stored, _ := env.orderRepo.FindByID(ctx, nil, order.ID)
	assert.Equal(t, constants.StatusInProgress, stored.Status)
	subs, _ := env.submissions.List(ctx, order.ID, writer)
	assert.Empty(t, subs)
}

// Resubmission appends; it never replaces the history, and only the newest
// submission is the one under review.
func TestSubmitWork_AppendOnlyHistory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	order, customer, writer := env.seedOrder(constants.StatusInProgress, true)

	_, err := env.engine.Transition(ctx, order.ID, constants.ActionSubmitWork, writer,
		TransitionPayload{FileURL: "/uploads/submissions/v1.docx"})
	require.NoError(t, err)

	_, err = env.engine.Transition(ctx, order.ID, constants.ActionRequestFeedback, customer,
		TransitionPayload{FeedbackText: "fix the references"})
	require.NoError(t, err)

	_, err = env.engine.Transition(ctx, order.ID, constants.ActionSubmitWork, writer,
		TransitionPayload{FileURL: "/uploads/submissions/v2.docx"})
	require.NoError(t, err)

	subs, err := env.submissions.List(ctx, order.ID, writer)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	// newest first
	assert.Equal(t, "/uploads/submissions/v2.docx", subs[0].FileURL)
	assert.Equal(t, constants.SubmissionPendingReview, subs[0].Status)
	assert.Equal(t, "/uploads/submissions/v1.docx", subs[1].FileURL)
	assert.Equal(t, constants.SubmissionChangeRequested, subs[1].Status)

	latest, err := env.submissions.Latest(ctx, order.ID, writer)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/submissions/v2.docx", latest.FileURL)
}

func TestSubmissionList_ViewGate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	order, customer, writer := env.seedOrder(constants.StatusInProgress, true)

	_, err := env.engine.Transition(ctx, order.ID, constants.ActionSubmitWork, writer,
		TransitionPayload{FileURL: "/uploads/submissions/v1.docx"})
	require.NoError(t, err)

	// the customer and an admin can read, a stranger cannot
	_, err = env.submissions.List(ctx, order.ID, customer)
	assert.NoError(t, err)
	_, err = env.submissions.List(ctx, order.ID, env.admin())
	assert.NoError(t, err)

	strangerID := env.userRepo.add("user")
	stranger := entities.Actor{ID: strangerID, Roles: []string{"user"}}
	_, err = env.submissions.List(ctx, order.ID, stranger)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
