package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    TrackingStatus
		to      TrackingStatus
		allowed bool
	}{
		{TrackingPendente, TrackingEmTransito, true},
		{TrackingPendente, TrackingCancelada, true},
		{TrackingPendente, TrackingEntregue, false},
		{TrackingEmTransito, TrackingEntregue, true},
		{TrackingEmTransito, TrackingCancelada, true},
		{TrackingEmTransito, TrackingPendente, false},
		{TrackingEntregue, TrackingEmTransito, false},
		{TrackingEntregue, TrackingCancelada, false},
		{TrackingCancelada, TrackingEmTransito, false},
		{TrackingCancelada, TrackingEntregue, false},
		// Writing the current status again is allowed outside terminal states.
		{TrackingPendente, TrackingPendente, true},
		{TrackingEmTransito, TrackingEmTransito, true},
		{TrackingEntregue, TrackingEntregue, false},
		{TrackingCancelada, TrackingCancelada, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestTrackingStatus_IsTerminal(t *testing.T) {
	assert.False(t, TrackingPendente.IsTerminal())
	assert.False(t, TrackingEmTransito.IsTerminal())
	assert.True(t, TrackingEntregue.IsTerminal())
	assert.True(t, TrackingCancelada.IsTerminal())
}

func TestTrackingStatus_IsValid(t *testing.T) {
	assert.True(t, TrackingPendente.IsValid())
	assert.True(t, TrackingEmTransito.IsValid())
	assert.True(t, TrackingEntregue.IsValid())
	assert.True(t, TrackingCancelada.IsValid())
	assert.False(t, TrackingStatus("extraviada").IsValid())
}

func TestTracking_ChangeStatus(t *testing.T) {
	tracking := &Tracking{Status: TrackingPendente}

	require.NoError(t, tracking.ChangeStatus(TrackingEmTransito))
	assert.Equal(t, TrackingEmTransito, tracking.Status)

	err := tracking.ChangeStatus(TrackingPendente)
	assert.ErrorIs(t, err, ErrInvalidTrackingTransition)
	assert.Equal(t, TrackingEmTransito, tracking.Status)
}

func TestTracking_ReportLocation(t *testing.T) {
	tracking := &Tracking{Status: TrackingEmTransito}

	tracking.ReportLocation(-46.6333, -23.5505)

	require.NotNil(t, tracking.LastLocation)
	assert.Equal(t, -46.6333, tracking.LastLocation.Lon())
	assert.Equal(t, -23.5505, tracking.LastLocation.Lat())
}
