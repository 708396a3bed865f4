package aiquiz

import "fmt"

func BuildQuizPrompt(storyText string, n int) string {
	return fmt.Sprintf(`Generate exactly %d multiple-choice questions based on this story.
Return them ONLY in valid JSON (no extra text). The JSON must be an array of objects, each object:
- question: string
- options: array of 4 strings, each starting with "A) ", "B) ", "C) ", "D) "
- answer: single letter string "A" or "B" or "C" or "D"

Story:
%s`, n, storyText)
}
