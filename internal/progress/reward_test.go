package progress

import (
	"testing"

	"github.com/barbian-academy/backend/internal/domain"
)

func TestRewardForPicksFirstMatchingTheme(t *testing.T) {
	cases := []struct {
		name   string
		lesson *domain.LessonModel
		badge  string
		xp     int
	}{
		{"final evaluation", &domain.LessonModel{ID: 28, Title: "Repaso y retroalimentación"}, "🏆 Evaluador Maestro", 50},
		{"challenge", &domain.LessonModel{ID: 27, Title: "Desafío: Haz un corte completo (cabello + barba)"}, "⚡ Desafío Completado", 25},
		{"fade theme", &domain.LessonModel{ID: 15, Title: "Fade bajo (low fade): paso a paso"}, "✂️ Maestro del Fade", 15},
		{"razor theme", &domain.LessonModel{ID: 19, Title: "Afeitado con navaja: seguridad y ángulo"}, "🪒 Experto en Navaja", 15},
		{"plain lesson", &domain.LessonModel{ID: 3, Title: "Tipos de cabello y texturas"}, "", 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reward := RewardFor(tc.lesson)
			if reward.Badge != tc.badge {
				t.Errorf("badge = %q, want %q", reward.Badge, tc.badge)
			}
			if reward.XP != tc.xp {
				t.Errorf("xp = %d, want %d", reward.XP, tc.xp)
			}
			if reward.Message == "" {
				t.Error("reward message must not be empty")
			}
		})
	}
}

func TestRewardEvaluationWinsOverTheme(t *testing.T) {
	// lesson 14 closes phase 1, the evaluation badge must win even when the
	// title would match a themed badge
	reward := RewardFor(&domain.LessonModel{ID: 14, Title: "Fade y repaso"})
	if reward.Badge != "🏆 Evaluador Maestro" {
		t.Errorf("badge = %q, want evaluation badge", reward.Badge)
	}
}
