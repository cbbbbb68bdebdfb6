package entities

// Status is the lifecycle stage of a delivery request.
//
// Domain notes:
//   - The concierge flow moves a parcel from the consumer's e-commerce order
//     through a warehouse stay to a scheduled final delivery.
//   - Operators may set any vocabulary value; the engine does not enforce a
//     strict forward-only graph. What it does guarantee is the history log:
//     one append per effective change, never reordered, never truncated.

type Status string

const (
	StatusSubmitted           Status = "submitted"
	StatusPaymentPending      Status = "payment_pending"
	StatusApprovalPending     Status = "approval_pending"
	StatusRescheduleRequested Status = "reschedule_requested"
	StatusApproved            Status = "approved"
	StatusScheduled           Status = "scheduled"
	StatusParcelExpected      Status = "parcel_expected"
	StatusParcelArrived       Status = "parcel_arrived"
	StatusInStorage           Status = "in_storage"
	StatusPreparingDispatch   Status = "preparing_dispatch"
	StatusOutForDelivery      Status = "out_for_delivery"
	StatusDelivered           Status = "delivered"
	StatusRejected            Status = "rejected"
	StatusCancelled           Status = "cancelled"
	StatusIssueReported       Status = "issue_reported"
)

// Stage is the display category dashboards group statuses into for badges
// and statistics.
type Stage string

const (
	StagePending    Stage = "pending"
	StageInProgress Stage = "in_progress"
	StageDelivered  Stage = "delivered"
	StageRejected   Stage = "rejected"
	StageCancelled  Stage = "cancelled"
	StageUnknown    Stage = "unknown"
)

// Stage maps a status to its display category. Total over all strings:
// anything outside the vocabulary falls back to StageUnknown so a stale or
// hand-edited document still renders.
func (s Status) Stage() Stage {
	switch s {
	case StatusSubmitted, StatusPaymentPending, StatusApprovalPending, StatusRescheduleRequested:
		return StagePending
	case StatusApproved, StatusScheduled, StatusParcelExpected, StatusParcelArrived,
		StatusInStorage, StatusPreparingDispatch, StatusOutForDelivery:
		return StageInProgress
	case StatusDelivered:
		return StageDelivered
	case StatusRejected, StatusIssueReported:
		return StageRejected
	case StatusCancelled:
		return StageCancelled
	default:
		return StageUnknown
	}
}

// IsKnown reports whether s belongs to the fixed vocabulary.
func (s Status) IsKnown() bool {
	return s.Stage() != StageUnknown
}
