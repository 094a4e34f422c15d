package llm

import (
	_ "embed"
	"fmt"
)

//go:embed prompts/contract_v1.txt
var contractPromptV1 string

// SystemPrompt frames the model as a contract-review expert.
const SystemPrompt = "Вы - эксперт по юридическому анализу договоров. Анализируйте договоры на предмет рисков, невыгодных условий и потенциальных проблем."

// maxPromptTextRunes caps how much contract text is sent to the provider.
const maxPromptTextRunes = 8000

// ContractPrompt renders the analysis prompt for the given contract text,
// truncated to the provider cap.
func ContractPrompt(contractText string) string {
	runes := []rune(contractText)
	if len(runes) > maxPromptTextRunes {
		runes = runes[:maxPromptTextRunes]
	}
	return fmt.Sprintf(contractPromptV1, string(runes))
}
