package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
	apperrors "github.com/Nduhiu17/treasure-shop-api/pkg/errors"
)

func TestApprove_MarksLatestSubmission(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	order, customer, writer := env.seedOrder(constants.StatusInProgress, true)

	_, err := env.engine.Transition(ctx, order.ID, constants.ActionSubmitWork, writer,
		TransitionPayload{FileURL: "/uploads/submissions/final.docx"})
	require.NoError(t, err)

	updated, err := env.engine.Transition(ctx, order.ID, constants.ActionApprove, customer, TransitionPayload{})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusApproved, updated.Status)

	latest, err := env.submissions.Latest(ctx, order.ID, customer)
	require.NoError(t, err)
	assert.Equal(t, constants.SubmissionApproved, latest.Status)
}

func TestApprove_WithoutSubmissionIsRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	// an order forced into review state with no submission row behind it
	order, customer, _ := env.seedOrder(constants.StatusSubmittedForReview, true)

	_, err := env.engine.Transition(ctx, order.ID, constants.ActionApprove, customer, TransitionPayload{})

	var missing *apperrors.MissingPrerequisiteError
	require.ErrorAs(t, err, &missing)

	stored, _ := env.orderRepo.FindByID(ctx, nil, order.ID)
	assert.Equal(t, constants.StatusSubmittedForReview, stored.Status)
}

func TestRequestFeedback_FilesRecordAndReopens(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	order, customer, writer := env.seedOrder(constants.StatusInProgress, true)

	_, err := env.engine.Transition(ctx, order.ID, constants.ActionSubmitWork, writer,
		TransitionPayload{FileURL: "/uploads/submissions/v1.docx"})
	require.NoError(t, err)

	annotated := "/uploads/feedbacks/annotated.pdf"
	updated, err := env.engine.Transition(ctx, order.ID, constants.ActionRequestFeedback, customer,
		TransitionPayload{FeedbackText: "wrong citation style", FeedbackFileURL: &annotated})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusFeedback, updated.Status)

	feedbacks, err := env.reviews.ListFeedbacks(ctx, order.ID, customer)
	require.NoError(t, err)
	require.Len(t, feedbacks, 1)
	assert.Equal(t, "wrong citation style", feedbacks[0].Text)
	assert.Equal(t, customer.ID, feedbacks[0].AuthorID)
	require.NotNil(t, feedbacks[0].FileURL)
	assert.Equal(t, annotated, *feedbacks[0].FileURL)

	latest, err := env.submissions.Latest(ctx, order.ID, customer)
	require.NoError(t, err)
	assert.Equal(t, constants.SubmissionChangeRequested, latest.Status)
}

func TestRequestFeedback_RequiresText(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	order, customer, writer := env.seedOrder(constants.StatusInProgress, true)

	_, err := env.engine.Transition(ctx, order.ID, constants.ActionSubmitWork, writer,
		TransitionPayload{FileURL: "/uploads/submissions/v1.docx"})
	require.NoError(t, err)

	_, err = env.engine.Transition(ctx, order.ID, constants.ActionRequestFeedback, customer, TransitionPayload{})

	var missing *apperrors.MissingPrerequisiteError
	require.ErrorAs(t, err, &missing)

	// the submission stays pending and the order stays in review
	latest, _ := env.submissions.Latest(ctx, order.ID, customer)
	assert.Equal(t, constants.SubmissionPendingReview, latest.Status)
	stored, _ := env.orderRepo.FindByID(ctx, nil, order.ID)
	assert.Equal(t, constants.StatusSubmittedForReview, stored.Status)
}

// Approve and feedback are mutually exclusive on one review round: once
// the order left submitted_for_review, the other action is illegal.
func TestReview_MutualExclusion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	order, customer, writer := env.seedOrder(constants.StatusInProgress, true)

	_, err := env.engine.Transition(ctx, order.ID, constants.ActionSubmitWork, writer,
		TransitionPayload{FileURL: "/uploads/submissions/v1.docx"})
	require.NoError(t, err)

	_, err = env.engine.Transition(ctx, order.ID, constants.ActionApprove, customer, TransitionPayload{})
	require.NoError(t, err)

	_, err = env.engine.Transition(ctx, order.ID, constants.ActionRequestFeedback, customer,
		TransitionPayload{FeedbackText: "too late"})

	var invalid *apperrors.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, constants.StatusApproved, invalid.Status)
}
