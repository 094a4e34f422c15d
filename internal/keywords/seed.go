package keywords

import (
	"fmt"
	"time"
)

// builtinPhrases are the seed dangerous phrases watched in every scan.
// The Russian list mirrors the clauses the product was built around; the
// English entries cover the same clauses in English-language contracts.
var builtinPhrases = []string{
	"штраф",
	"пеня",
	"неустойка",
	"одностороннее расторжение",
	"безусловное обязательство",
	"автопролонгация",
	"безакцептное списание",
	"полная материальная ответственность",
	"без права отказа",
	"исключительные права",
	"бессрочное обязательство",
	"односторонний отказ",
	"полная ответственность за",
	"возмещение всех убытков",
	"неограниченная ответственность",
	"penalty",
	"unilateral termination",
	"automatic renewal",
	"automatic withdrawal",
	"without right of refusal",
	"unlimited liability",
	"full liability for",
	"perpetual obligation",
}

var seededAt = time.Now().UTC()

// Builtins returns the immutable builtin keyword entries, in seed order.
func Builtins() []Keyword {
	out := make([]Keyword, 0, len(builtinPhrases))
	for i, phrase := range builtinPhrases {
		out = append(out, Keyword{
			ID:        fmt.Sprintf("builtin-%02d", i+1),
			Phrase:    phrase,
			Builtin:   true,
			CreatedAt: seededAt,
		})
	}
	return out
}
