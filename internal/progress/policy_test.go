package progress

import (
	"testing"
)

func TestCriteriaForFinalEvaluations(t *testing.T) {
	for _, id := range []int{14, 28, 42, 56, 70, 84} {
		got := CriteriaFor(id)
		if got.MinWatchPercentage != 95 || !got.RequiresQuiz || got.XPReward != 50 {
			t.Errorf("CriteriaFor(%d) = %+v, want {95 true 50}", id, got)
		}
	}
}

func TestCriteriaForChallenge(t *testing.T) {
	// 13 sits in the challenge slot, it is not a final evaluation
	got := CriteriaFor(13)
	if got.MinWatchPercentage != 90 || !got.RequiresQuiz || got.XPReward != 25 {
		t.Errorf("CriteriaFor(13) = %+v, want {90 true 25}", got)
	}
}

func TestCriteriaForRegularLesson(t *testing.T) {
	got := CriteriaFor(15)
	if got.MinWatchPercentage != 90 || got.RequiresQuiz || got.XPReward != 10 {
		t.Errorf("CriteriaFor(15) = %+v, want {90 false 10}", got)
	}
}

func TestCriteriaForTable(t *testing.T) {
	cases := []struct {
		id      int
		watch   float64
		quiz    bool
		xp      int
	}{
		{1, 90, false, 10},
		{12, 90, false, 10},
		{13, 90, true, 25},
		{14, 95, true, 50},
		{27, 90, true, 25},
		{28, 95, true, 50},
		{55, 90, true, 25},
		{70, 95, true, 50},
		{83, 90, true, 25},
		{84, 95, true, 50},
		{85, 90, false, 10},
	}
	for _, tc := range cases {
		got := CriteriaFor(tc.id)
		if got.MinWatchPercentage != tc.watch || got.RequiresQuiz != tc.quiz || got.XPReward != tc.xp {
			t.Errorf("CriteriaFor(%d) = %+v, want {%v %v %v}", tc.id, got, tc.watch, tc.quiz, tc.xp)
		}
	}
}

func TestChallengeAndEvaluationAreDisjoint(t *testing.T) {
	for id := 1; id <= 84; id++ {
		if IsChallenge(id) && IsFinalEvaluation(id) {
			t.Errorf("lesson %d classified as both challenge and final evaluation", id)
		}
	}
}
