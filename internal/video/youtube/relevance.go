package youtube

import "strings"

// trustedChannels barber channels whose uploads pass the relevance filter
// without keyword evidence
var trustedChannels = []string{
	"Barber Tutorials",
	"Professional Barber",
	"360Jeezy",
	"Beardbrand",
	"The Modern Barber",
	"Barber Nation",
	"HD Cutz",
	"Schorem Barbershop",
	"KENSURFS",
	"The Rich Barber",
	"Barber Tutorial",
	"Barber Tips",
	"Mounir Salon",
	"Ryan Pearson",
	"360WaveProcess",
}

var barberKeywords = []string{
	"barber tutorial",
	"barbería",
	"corte de cabello",
	"fade tutorial",
	"afeitado",
	"navaja",
	"tijera",
	"hair cutting",
	"barber technique",
	"professional barber",
}

// searchTerms split a lesson title into lowercased terms longer than two
// characters, the minimum to carry meaning in the Spanish course titles
func searchTerms(lessonTitle string) []string {
	var terms []string
	for _, term := range strings.Fields(strings.ToLower(lessonTitle)) {
		if len(term) > 2 {
			terms = append(terms, term)
		}
	}
	return terms
}

// isRelevant accept results that come from a trusted channel or carry
// barbering vocabulary, and that also mention the lesson's own terms
func isRelevant(item searchItem, terms []string) bool {
	title := strings.ToLower(item.Snippet.Title)
	description := strings.ToLower(item.Snippet.Description)
	channel := strings.ToLower(item.Snippet.ChannelTitle)

	trusted := false
	for _, name := range trustedChannels {
		if strings.Contains(channel, strings.ToLower(name)) {
			trusted = true
			break
		}
	}

	hasKeyword := false
	for _, keyword := range barberKeywords {
		if strings.Contains(title, keyword) || strings.Contains(description, keyword) {
			hasKeyword = true
			break
		}
	}

	matchesLesson := false
	for _, term := range terms {
		if strings.Contains(title, term) || strings.Contains(description, term) {
			matchesLesson = true
			break
		}
	}

	return (trusted || hasKeyword) && matchesLesson
}
