package client

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_OpensAfterFailuresAndRecovers(t *testing.T) {
	now := time.Unix(0, 0)
	b := NewBreaker("orders", 2, time.Minute)
	b.now = func() time.Time { return now }

	down := errors.New("connection refused")
	assert.ErrorIs(t, b.Do(func() error { return down }), down)
	assert.Equal(t, StateClosed, b.State())
	assert.ErrorIs(t, b.Do(func() error { return down }), down)
	assert.Equal(t, StateOpen, b.State())

	called := false
	err := b.Do(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)

	now = now.Add(time.Minute)
	assert.NoError(t, b.Do(func() error { return nil }))
	assert.Equal(t, StateHalfOpen, b.State())
	assert.NoError(t, b.Do(func() error { return nil }))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Unix(0, 0)
	b := NewBreaker("generator", 1, time.Second)
	b.now = func() time.Time { return now }

	b.Do(func() error { return errors.New("timeout") })
	now = now.Add(time.Second)
	b.Do(func() error { return &StatusError{Service: "generator", StatusCode: http.StatusBadGateway} })
	assert.Equal(t, StateOpen, b.State())
}

func TestBreaker_ClientErrorsDoNotTrip(t *testing.T) {
	b := NewBreaker("orders", 1, time.Minute)

	for i := 0; i < 3; i++ {
		b.Do(func() error { return &StatusError{Service: "orders", StatusCode: http.StatusBadRequest} })
	}
	assert.Equal(t, StateClosed, b.State())
}
