package progress

import (
	"github.com/barbian-academy/backend/internal/domain"
)

// finalEvaluations lesson identifiers closing each phase. Checked before the
// modulo rule: the two sets are disjoint today but the fixed set always wins
var finalEvaluations = map[int]bool{
	14: true, 28: true, 42: true, 56: true, 70: true, 84: true,
}

// lessonsPerPhase curriculum stride, the 13th slot of every phase is the
// weekly challenge
const lessonsPerPhase = 14

// base completion rules
const (
	defaultWatchPercentage    = 90
	evaluationWatchPercentage = 95

	regularXP    = 10
	challengeXP  = 25
	evaluationXP = 50
)

// IsChallenge report whether the lesson occupies the weekly challenge slot
func IsChallenge(lessonID int) bool {
	return lessonID%lessonsPerPhase == lessonsPerPhase-1
}

// IsFinalEvaluation report whether the lesson is a phase-closing evaluation
func IsFinalEvaluation(lessonID int) bool {
	return finalEvaluations[lessonID]
}

// CriteriaFor derive the completion requirements for a lesson identifier.
// Pure and total over positive identifiers
func CriteriaFor(lessonID int) *domain.CompletionCriteria {
	if IsFinalEvaluation(lessonID) {
		return &domain.CompletionCriteria{
			MinWatchPercentage: evaluationWatchPercentage,
			RequiresQuiz:       true,
			XPReward:           evaluationXP,
		}
	}
	if IsChallenge(lessonID) {
		return &domain.CompletionCriteria{
			MinWatchPercentage: defaultWatchPercentage,
			RequiresQuiz:       true,
			XPReward:           challengeXP,
		}
	}
	return &domain.CompletionCriteria{
		MinWatchPercentage: defaultWatchPercentage,
		RequiresQuiz:       false,
		XPReward:           regularXP,
	}
}
