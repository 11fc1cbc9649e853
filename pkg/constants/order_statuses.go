package constants

// Order lifecycle statuses. The column values in the orders table use
// these codes verbatim; only the transition engine writes them.
const (
	StatusPendingPayment              = "pending_payment"
	StatusPaid                        = "paid"
	StatusAwaitingAssignment          = "awaiting_assignment"
	StatusAwaitingAsignAcceptance     = "awaiting_asign_acceptance"
	StatusAwaitingAssignmentRejected  = "awaiting_assignment_rejected"
	StatusAssigned                    = "assigned"
	StatusInProgress                  = "in_progress"
	StatusSubmittedForReview          = "submitted_for_review"
	StatusFeedback                    = "feedback"
	StatusApproved                    = "approved"
	StatusCompleted                   = "completed"
)

var FinalStatuses = []string{
	StatusCompleted,
}

func IsFinalStatus(code string) bool {
	for _, s := range FinalStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// Submission review states.
const (
	SubmissionPendingReview   = "pending_review"
	SubmissionApproved        = "approved"
	SubmissionChangeRequested = "change_requested"
)
