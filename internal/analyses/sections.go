package analyses

import "strings"

// Section is one of the canonical clause categories a well-formed contract
// should contain. Presence is decided by case-insensitive substring search
// for any of its markers, anywhere in the text.
type Section struct {
	ID      string
	Label   string
	Markers []string
}

// RequiredSections is the fixed set of mandatory contract sections, in
// canonical order.
var RequiredSections = []Section{
	{
		ID:      "subject",
		Label:   "Предмет договора",
		Markers: []string{"предмет договора", "subject of the contract", "subject matter"},
	},
	{
		ID:      "rights_obligations",
		Label:   "Права и обязанности сторон",
		Markers: []string{"права и обязанности", "обязанности сторон", "rights and obligations"},
	},
	{
		ID:      "price_payment",
		Label:   "Цена и порядок оплаты",
		Markers: []string{"цена", "оплата", "стоимость", "payment terms", "contract price"},
	},
	{
		ID:      "duration",
		Label:   "Срок действия договора",
		Markers: []string{"срок", "term of the contract", "duration"},
	},
	{
		ID:      "liability",
		Label:   "Ответственность сторон",
		Markers: []string{"ответственность сторон", "liability of the parties"},
	},
	{
		ID:      "dispute_resolution",
		Label:   "Порядок разрешения споров",
		Markers: []string{"порядок разрешения споров", "разрешение споров", "dispute resolution", "governing law"},
	},
	{
		ID:      "party_details",
		Label:   "Реквизиты сторон",
		Markers: []string{"реквизиты сторон", "реквизиты", "details of the parties", "addresses of the parties"},
	},
}

// SectionLabel returns the display label for a section id.
func SectionLabel(id string) string {
	for _, s := range RequiredSections {
		if s.ID == id {
			return s.Label
		}
	}
	return id
}

// MissingSections classifies every required section against the text and
// returns the ids of the missing ones, in canonical order. Deterministic and
// total: empty text reports all sections missing.
func MissingSections(text string) []string {
	lower := strings.ToLower(text)
	missing := []string{}
	for _, section := range RequiredSections {
		if !sectionPresent(lower, section) {
			missing = append(missing, section.ID)
		}
	}
	return missing
}

func sectionPresent(lowerText string, section Section) bool {
	for _, marker := range section.Markers {
		if strings.Contains(lowerText, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
