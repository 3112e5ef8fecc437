package evaluator

import "fmt"

// SystemPrompt accompanies every evaluation request and reiterates
// the scale and output constraints.
const SystemPrompt = "You are an expert evaluator. Always score on a 0-100 scale. Return only valid JSON without markdown formatting."

const promptTemplate = `You are an expert evaluator. Evaluate the response based on the provided rubrics.

IMPORTANT: Score each criterion on a scale of 0 to 100 (not 0 to 10).
Examples of valid scores: 45, 67, 82, 91 (NOT 4.5, 6.7, 8.2, 9.1)

QUESTION: %s

RESPONSE: %s

RUBRICS:
%s

Provide a detailed evaluation with:
1. Individual scores for each rubric criterion (0-100 scale)
2. Specific feedback for each criterion
3. An overall score (0-100 scale)
4. A brief summary of the evaluation

Return ONLY valid JSON in this exact format:
{"rubrics": [{"criterion": "Name", "score": 75, "feedback": "Feedback here"}], "overall_score": 72, "summary": "Summary here"}

Do not include any markdown formatting, code blocks, or extra text. Only return the JSON object.`

// BuildPrompt renders the fixed evaluation instruction prompt.
// Pure: no I/O, no randomness.
func BuildPrompt(question, rubrics, response string) string {
	return fmt.Sprintf(promptTemplate, question, response, rubrics)
}
