package gamestate

import "github.com/dicemaster/scorekeeper/internal/models"

type SaveInput struct {
	TableID string
	State   *models.GameState
}

type LoadInput struct {
	TableID string
}

type DeleteInput struct {
	TableID string
}
