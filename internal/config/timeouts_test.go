package config

import (
	"testing"
	"time"
)

func TestDefaultPublishTimeouts(t *testing.T) {
	if DefaultPublishTimeouts.Sheets != 60*time.Second {
		t.Errorf("Expected default Sheets timeout 60s, got %v", DefaultPublishTimeouts.Sheets)
	}

	if DefaultPublishTimeouts.BigQuery != 2*time.Minute {
		t.Errorf("Expected default BigQuery timeout 2m, got %v", DefaultPublishTimeouts.BigQuery)
	}

	if DefaultPublishTimeouts.DeployDial != 30*time.Second {
		t.Errorf("Expected default deploy dial timeout 30s, got %v", DefaultPublishTimeouts.DeployDial)
	}

	if DefaultPublishTimeouts.DeployTransfer != 2*time.Minute {
		t.Errorf("Expected default deploy transfer timeout 2m, got %v", DefaultPublishTimeouts.DeployTransfer)
	}

	if !DefaultPublishTimeouts.Valid() {
		t.Error("Expected default timeouts to be valid")
	}
}

func TestDefaultPublishTimeoutsImmutability(t *testing.T) {
	// Test that modifying a copy doesn't affect the default
	original := DefaultPublishTimeouts

	modified := DefaultPublishTimeouts
	modified.Sheets = time.Millisecond

	if DefaultPublishTimeouts.Sheets != original.Sheets {
		t.Error("DefaultPublishTimeouts was unexpectedly modified")
	}
}

func TestPublishTimeoutsValid(t *testing.T) {
	testCases := []struct {
		name     string
		timeouts PublishTimeouts
		valid    bool
	}{
		{
			name:     "defaults",
			timeouts: DefaultPublishTimeouts,
			valid:    true,
		},
		{
			name: "zero sheets timeout",
			timeouts: PublishTimeouts{
				BigQuery:       time.Minute,
				DeployDial:     time.Second,
				DeployTransfer: time.Minute,
			},
			valid: false,
		},
		{
			name: "negative transfer timeout",
			timeouts: PublishTimeouts{
				Sheets:         time.Minute,
				BigQuery:       time.Minute,
				DeployDial:     time.Second,
				DeployTransfer: -time.Second,
			},
			valid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.timeouts.Valid(); got != tc.valid {
				t.Errorf("Expected validity %v, got %v for %+v", tc.valid, got, tc.timeouts)
			}
		})
	}
}
