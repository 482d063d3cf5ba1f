package scoring

import (
	"testing"

	"github.com/dicemaster/scorekeeper/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		mode        models.GameMode
		faces       []int
		priorRounds int
		want        int
	}{
		{
			name:  "classic sums the faces",
			mode:  models.GameModeClassic,
			faces: []int{3, 4},
			want:  7,
		},
		{
			name:  "unknown mode falls through to sum",
			mode:  models.GameMode("bogus"),
			faces: []int{2, 5, 6},
			want:  13,
		},
		{
			name:  "poker five of a kind",
			mode:  models.GameModePoker,
			faces: []int{4, 4, 4, 4, 4},
			want:  100,
		},
		{
			name:  "poker four of a kind beats full house",
			mode:  models.GameModePoker,
			faces: []int{4, 4, 4, 4, 2},
			want:  50,
		},
		{
			name:  "poker full house",
			mode:  models.GameModePoker,
			faces: []int{2, 2, 2, 5, 5},
			want:  40,
		},
		{
			name:  "poker three of a kind alone",
			mode:  models.GameModePoker,
			faces: []int{3, 3, 3, 1, 6},
			want:  30,
		},
		{
			name:  "poker two pair",
			mode:  models.GameModePoker,
			faces: []int{1, 1, 5, 5, 6},
			want:  20,
		},
		{
			name:  "poker one pair",
			mode:  models.GameModePoker,
			faces: []int{1, 1, 3, 4, 6},
			want:  10,
		},
		{
			name:  "poker nothing sums the faces",
			mode:  models.GameModePoker,
			faces: []int{1, 2, 4, 5},
			want:  12,
		},
		{
			name:  "poker single die never pairs",
			mode:  models.GameModePoker,
			faces: []int{6},
			want:  6,
		},
		{
			name:  "generala served",
			mode:  models.GameModeGenerala,
			faces: []int{6, 6, 6, 6, 6},
			want:  1000,
		},
		{
			name:  "generala straight",
			mode:  models.GameModeGenerala,
			faces: []int{1, 2, 3, 4, 5},
			want:  500,
		},
		{
			name:  "generala unsorted straight still counts",
			mode:  models.GameModeGenerala,
			faces: []int{4, 2, 5, 3, 6},
			want:  500,
		},
		{
			name:  "generala repeat breaks the straight",
			mode:  models.GameModeGenerala,
			faces: []int{1, 2, 2, 3, 4},
			want:  12,
		},
		{
			name:  "generala single die is not a straight",
			mode:  models.GameModeGenerala,
			faces: []int{4},
			want:  4,
		},
		{
			name:        "blackjack natural on first roll",
			mode:        models.GameModeBlackjack,
			faces:       []int{10, 10, 1},
			priorRounds: 0,
			want:        71,
		},
		{
			name:        "blackjack 21 after first roll is plain",
			mode:        models.GameModeBlackjack,
			faces:       []int{10, 10, 1},
			priorRounds: 3,
			want:        21,
		},
		{
			name:        "blackjack bust is a flat penalty",
			mode:        models.GameModeBlackjack,
			faces:       []int{10, 8, 4},
			priorRounds: 1,
			want:        -20,
		},
		{
			name:        "blackjack bust on first roll still busts",
			mode:        models.GameModeBlackjack,
			faces:       []int{20, 20},
			priorRounds: 0,
			want:        -20,
		},
		{
			name:        "blackjack under stays as the sum",
			mode:        models.GameModeBlackjack,
			faces:       []int{5, 6},
			priorRounds: 2,
			want:        11,
		},
		{
			name:  "truco pair of aces",
			mode:  models.GameModeTruco,
			faces: []int{1, 1},
			want:  32,
		},
		{
			name:  "truco remap without pairs",
			mode:  models.GameModeTruco,
			faces: []int{1, 2},
			want:  21,
		},
		{
			name:  "truco unmapped face counts at face value",
			mode:  models.GameModeTruco,
			faces: []int{7, 3},
			want:  16,
		},
		{
			name:  "truco two pair groups pay twice",
			mode:  models.GameModeTruco,
			faces: []int{2, 2, 3, 3},
			want:  58,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.mode, tt.faces, tt.priorRounds)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateNegativeDeltaIsNotClamped(t *testing.T) {
	got := Evaluate(models.GameModeBlackjack, []int{20, 20, 20}, 5)
	assert.Equal(t, -20, got)
}
