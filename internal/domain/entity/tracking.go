package entity

import (
	"time"

	"feira/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrInvalidTrackingTransition is returned when a status update does not
// follow the delivery state machine.
var ErrInvalidTrackingTransition = errors.New("invalid tracking status transition")

// TrackingStatus is the delivery progress of a paid purchase.
type TrackingStatus string

const (
	// TrackingPendente means the order is waiting for a courier.
	TrackingPendente TrackingStatus = "pendente"
	// TrackingEmTransito means the courier is on the way.
	TrackingEmTransito TrackingStatus = "em_transito"
	// TrackingEntregue is the terminal success state.
	TrackingEntregue TrackingStatus = "entregue"
	// TrackingCancelada is the terminal failure state, reachable from any
	// non-terminal status.
	TrackingCancelada TrackingStatus = "cancelada"
)

// IsValid checks if the TrackingStatus is a valid value.
func (s TrackingStatus) IsValid() bool {
	switch s {
	case TrackingPendente, TrackingEmTransito, TrackingEntregue, TrackingCancelada:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status change is allowed.
func (s TrackingStatus) IsTerminal() bool {
	return s == TrackingEntregue || s == TrackingCancelada
}

// CanTransitionTo enforces the delivery state machine:
// pendente -> em_transito -> entregue, with cancelada reachable from any
// non-terminal state. Writing the current status again is allowed so that
// location-only updates stay simple.
func (s TrackingStatus) CanTransitionTo(next TrackingStatus) bool {
	if s == next {
		return !s.IsTerminal()
	}

	switch s {
	case TrackingPendente:
		return next == TrackingEmTransito || next == TrackingCancelada
	case TrackingEmTransito:
		return next == TrackingEntregue || next == TrackingCancelada
	default:
		return false
	}
}

// Tracking is the delivery-progress record tied one-to-one to a paid
// purchase. The assigned courier mutates it; the buyer reads it.
type Tracking struct {
	ID               uuid.UUID
	PurchaseID       uuid.UUID  // The paid purchase being delivered. Unique per tracking row.
	DeliveryPersonID *uuid.UUID // Assigned courier. Nil until a courier takes the delivery.
	Status           TrackingStatus
	LastLocation     *orb.Point // Courier's last known position (lon/lat). Nil until first report.
	EstimatedTime    *string    // Estimated time to arrival, as an interval string. Optional.
	Purchase         *Purchase  // Joined purchase. Nil when not loaded.
	DeliveryPerson   *Profile   // Joined courier profile. Nil when unassigned or not loaded.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ChangeStatus applies a status transition, rejecting moves the state
// machine does not allow.
func (t *Tracking) ChangeStatus(next TrackingStatus) error {
	if !next.IsValid() {
		return errors.Wrapf(ErrInvalidTrackingTransition, "unknown status %q", next)
	}
	if !t.Status.CanTransitionTo(next) {
		return errors.Wrapf(ErrInvalidTrackingTransition, "%s -> %s", t.Status, next)
	}
	t.Status = next

	return nil
}

// ReportLocation records the courier's last known position.
func (t *Tracking) ReportLocation(lon, lat float64) {
	point := orb.Point{lon, lat}
	t.LastLocation = &point
}
