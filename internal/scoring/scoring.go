// Package scoring evaluates raw dice faces against the active game mode.
// Evaluation is pure: no side effects and no knowledge of turn bookkeeping.
package scoring

import (
	"sort"

	"github.com/dicemaster/scorekeeper/internal/models"
)

// Payouts for ranked combinations.
const (
	pokerFiveOfAKind  = 100
	pokerFourOfAKind  = 50
	pokerFullHouse    = 40
	pokerThreeOfAKind = 30
	pokerTwoPair      = 20
	pokerOnePair      = 10

	generalaServed   = 1000
	generalaStraight = 500

	blackjackTarget      = 21
	blackjackNaturalWin  = 50
	blackjackBustPenalty = -20

	trucoPairBonus = 10
)

// trucoValues remaps faces to their truco card values. Unmapped faces count
// at their own face value.
var trucoValues = map[int]int{
	1: 11,
	2: 10,
	3: 9,
	4: 8,
	5: 7,
	6: 6,
}

// Evaluate returns the signed score delta for a roll. priorRounds is the
// acting participant's rounds-played counter before this roll; only the
// blackjack natural rule looks at it.
func Evaluate(mode models.GameMode, faces []int, priorRounds int) int {
	switch mode {
	case models.GameModePoker:
		return evaluatePoker(faces)
	case models.GameModeGenerala:
		return evaluateGenerala(faces)
	case models.GameModeBlackjack:
		return evaluateBlackjack(faces, priorRounds)
	case models.GameModeTruco:
		return evaluateTruco(faces)
	default:
		return sum(faces)
	}
}

func sum(faces []int) int {
	total := 0
	for _, f := range faces {
		total += f
	}
	return total
}

// tally returns occurrence counts per face value
func tally(faces []int) map[int]int {
	counts := make(map[int]int, len(faces))
	for _, f := range faces {
		counts[f]++
	}
	return counts
}

// evaluatePoker checks ranked combinations in strict descending precedence;
// the first match wins. A group is any face occurring 2+ times, so a
// three-of-a-kind also counts toward the group tally for the full house check.
func evaluatePoker(faces []int) int {
	counts := tally(faces)

	pairGroups := 0
	threeOfAKind := false
	fourOfAKind := false
	fiveOfAKind := false

	for _, count := range counts {
		if count >= 2 {
			pairGroups++
		}
		if count >= 3 {
			threeOfAKind = true
		}
		if count >= 4 {
			fourOfAKind = true
		}
		if count >= 5 {
			fiveOfAKind = true
		}
	}

	switch {
	case fiveOfAKind:
		return pokerFiveOfAKind
	case fourOfAKind:
		return pokerFourOfAKind
	case threeOfAKind && pairGroups >= 2:
		return pokerFullHouse
	case threeOfAKind:
		return pokerThreeOfAKind
	case pairGroups >= 2:
		return pokerTwoPair
	case pairGroups == 1:
		return pokerOnePair
	default:
		return sum(faces)
	}
}

func evaluateGenerala(faces []int) int {
	for _, count := range tally(faces) {
		if count == 5 {
			return generalaServed
		}
	}

	if isStraight(faces) {
		return generalaStraight
	}

	return sum(faces)
}

// isStraight reports whether the sorted faces form a contiguous run with no
// repeats. A single die is never a straight.
func isStraight(faces []int) bool {
	if len(faces) < 2 {
		return false
	}

	sorted := make([]int, len(faces))
	copy(sorted, faces)
	sort.Ints(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}

func evaluateBlackjack(faces []int, priorRounds int) int {
	total := sum(faces)

	// Natural: exactly 21 on the participant's first roll of the session
	if priorRounds == 0 && total == blackjackTarget {
		return total + blackjackNaturalWin
	}

	// Bust: the penalty replaces the sum outright
	if total > blackjackTarget {
		return blackjackBustPenalty
	}

	return total
}

func evaluateTruco(faces []int) int {
	total := 0
	for _, f := range faces {
		if v, ok := trucoValues[f]; ok {
			total += v
		} else {
			total += f
		}
	}

	// Envido bonus: 10 per face value paired up in the raw roll
	for _, count := range tally(faces) {
		if count >= 2 {
			total += trucoPairBonus
		}
	}

	return total
}
