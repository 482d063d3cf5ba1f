package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicemaster/scorekeeper/internal/services/game"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(nil)
	require.NoError(t, err)
	return svc
}

func TestGetEventMessageRendersWinner(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.GetEventMessage(context.Background(), &GetEventMessageInput{
		Locale: "en",
		Event: game.Event{
			Type:            game.EventWinnerDeclared,
			ParticipantName: "Ana",
			Score:           120,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "🎉 Ana won the game with 120 points!", out.Message)
}

func TestGetEventMessageDefaultsToSpanish(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.GetEventMessage(context.Background(), &GetEventMessageInput{
		Locale: "fr",
		Event:  game.Event{Type: game.EventRoundEnded, Round: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "¡Ronda 3!", out.Message)
}

func TestGetEventMessageUnknownType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetEventMessage(context.Background(), &GetEventMessageInput{
		Event: game.Event{Type: game.EventType("bogus")},
	})
	assert.Error(t, err)
}

func TestGetErrorMessageMapsTypedErrors(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		err    error
		locale string
		want   string
	}{
		{game.ErrNoParticipants, "en", "Add participants before continuing."},
		{game.ErrAlreadyRolling, "es", "Espera a que termine la tirada actual."},
		{game.ErrCapacityExceeded, "en", "The table is full."},
		{game.ErrSessionAlreadyStarted, "en", "The roster is locked while a session is in progress."},
		{errors.New("boom"), "en", "Something went wrong. Try again."},
	}

	for _, tt := range tests {
		out, err := svc.GetErrorMessage(context.Background(), &GetErrorMessageInput{
			Locale: tt.locale,
			Err:    tt.err,
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, out.Message)
	}
}

func TestNewServiceRejectsUnknownDefaultLocale(t *testing.T) {
	_, err := NewService(&ServiceConfig{DefaultLocale: "xx"})
	assert.Error(t, err)
}
