// Package prompt renders the task prompts sent to the completion service.
// Every function is a pure template over its inputs: identical inputs
// always produce identical prompt text. Caller-supplied free text is
// embedded verbatim; prompt injection is an accepted limitation here.
package prompt

import (
	"encoding/json"
	"fmt"
)

// Questions renders the aptitude-test question-generation prompt.
// The output contract is a strict JSON array of question objects.
func Questions(currentStatus, currentField, interestField string) string {
	return fmt.Sprintf(`Generate 10 unique career guidance aptitude test questions tailored for a person with the following details:
- Current stage: %s
- Current Field: %s
- Area of Interest: %s

The questions should evaluate the user's skills, problem-solving ability, personality traits, and work preferences related to career paths and should evaluate if the person is actually suited for his current field or field of interest.

Return the questions as a strict JSON array with:
- "question": The question as a string
- "options": An array of 4 answer choices
- "category": The aspect being evaluated (e.g., Skills, Personality, Problem-Solving, Work Preferences).

Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.`,
		currentStatus, currentField, interestField)
}

// Analysis renders the result-analysis prompt. The output contract is
// 2-3 sentences of plain text, no structure expected.
func Analysis(results map[string]any) string {
	encoded, err := json.Marshal(results)
	if err != nil {
		encoded = []byte("{}")
	}
	return fmt.Sprintf(`Based on the following aptitude test results, provide a brief career recommendation in 2-3 sentences. Focus on the most suitable career path without listing individual responses.

Details:
- Current Status: %v
- Current Field: %v
- Field(s) of Interest: %v
- Responses: %s

Keep the response concise, practical, and actionable. It should provide guidance, show the truth, and offer some other options based on the field of interest and current field. Respond in 2-3 sentences of plain text.`,
		results["currentStatus"], results["currentField"], results["interestField"], encoded)
}

// Suggestions renders the career-path suggestion prompt. The output
// contract is a strict JSON array of suggestion objects.
func Suggestions(skills, interests, experience string) string {
	return fmt.Sprintf(`Analyze this profile and suggest 5 career paths:
Skills: %s
Interests: %s
Experience: %s

Return a strict JSON array with fields:
- "career_title": the career name as a string
- "growth_outlook": a short outlook description as a string
- "required_skills": an array of skill name strings

Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.`,
		skills, interests, experience)
}

// Chat renders the domain-restricted chatbot prompt. The output contract
// is 2-3 sentences of plain text.
func Chat(message string) string {
	return fmt.Sprintf(`You are a career guidance assistant. Only answer questions related to careers, studies, skills, jobs, and professional development.

User: %s

Provide a clear, concise, and helpful response in 2-3 sentences of plain text.`,
		message)
}
