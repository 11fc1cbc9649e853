package constants

// Role codes. A user may hold several at once (a writer can also be an
// admin); authorization always evaluates the full set.
const (
	RoleUser       = "user"
	RoleWriter     = "writer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Transition actions, the closed set accepted by the transition engine.
const (
	ActionPay              = "pay"
	ActionAssign           = "assign"
	ActionAcceptAssignment = "accept_assignment"
	ActionRejectAssignment = "reject_assignment"
	ActionStartProgress    = "start_progress"
	ActionSubmitWork       = "submit_work"
	ActionApprove          = "approve"
	ActionRequestFeedback  = "request_feedback"
	ActionMarkCompleted    = "mark_completed"
)
