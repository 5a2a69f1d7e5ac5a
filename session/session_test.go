package session

import (
	"context"
	"testing"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackerr"
)

func TestCheckCancelledNotCancelled(t *testing.T) {
	s := New(context.Background(), 0, nil)
	if err := s.CheckCancelled(CheckpointResample); err != nil {
		t.Errorf("CheckCancelled() = %v, want nil", err)
	}
}

func TestCheckCancelledAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(ctx, 0, nil)
	if err := s.CheckCancelled(CheckpointFFT); err != trackerr.ErrCancelled {
		t.Errorf("CheckCancelled() after cancel = %v, want ErrCancelled", err)
	}
}

func TestNewNilContextDefaultsToBackground(t *testing.T) {
	s := New(nil, 0, nil)
	if err := s.CheckCancelled(CheckpointQuality); err != nil {
		t.Errorf("CheckCancelled() with nil ctx = %v, want nil", err)
	}
}

func TestNewSharesCacheAcrossCalls(t *testing.T) {
	s := New(context.Background(), 4, nil)
	s.Cache().Get(1, 1, 10)
	if s.Cache().Len() != 1 {
		t.Errorf("Cache().Len() = %d, want 1", s.Cache().Len())
	}
}
