package progress

import (
	"fmt"
	"strings"

	"github.com/barbian-academy/backend/internal/domain"
)

// themed badge bonus shown alongside the stored reward
const themedXP = 15

// RewardFor build the presentational reward for a freshly completed lesson.
// The XP shown here is display material, the stored award always comes from
// the completion policy
func RewardFor(lesson *domain.LessonModel) *domain.CompletionReward {
	title := strings.ToLower(lesson.Title)

	switch {
	case IsFinalEvaluation(lesson.ID):
		return &domain.CompletionReward{
			XP:      evaluationXP,
			Badge:   "🏆 Evaluador Maestro",
			Message: fmt.Sprintf("¡Excelente! Has superado una evaluación importante. +%d XP", evaluationXP),
		}
	case IsChallenge(lesson.ID):
		return &domain.CompletionReward{
			XP:      challengeXP,
			Badge:   "⚡ Desafío Completado",
			Message: fmt.Sprintf("¡Increíble! Has superado el desafío semanal. +%d XP", challengeXP),
		}
	case strings.Contains(title, "fade"):
		return &domain.CompletionReward{
			XP:      themedXP,
			Badge:   "✂️ Maestro del Fade",
			Message: fmt.Sprintf("¡Perfecto! Has dominado una técnica de fade. +%d XP", themedXP),
		}
	case strings.Contains(title, "navaja") || strings.Contains(title, "afeitado"):
		return &domain.CompletionReward{
			XP:      themedXP,
			Badge:   "🪒 Experto en Navaja",
			Message: fmt.Sprintf("¡Impresionante! Has dominado el arte del afeitado. +%d XP", themedXP),
		}
	}
	return &domain.CompletionReward{
		XP:      regularXP,
		Message: "¡Bien hecho! Has completado la lección.",
	}
}
