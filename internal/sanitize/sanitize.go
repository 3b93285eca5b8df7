// Package sanitize normalizes raw model output before it reaches callers.
// Structured endpoints demand strict JSON after stripping markdown fences;
// plain-text endpoints pass the text through trimmed.
package sanitize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careerpilot/career-service/internal/models"
)

// stripFences removes surrounding markdown code fences, tagged or not.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// JSON strips fences from raw model text and unmarshals it into v.
// Upstream text is not a structurally-guaranteed contract, so a decode
// failure surfaces as models.ErrMalformedModelOutput rather than a crash.
func JSON(raw string, v any) error {
	cleaned := stripFences(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v", models.ErrMalformedModelOutput, err)
	}
	return nil
}

// Text trims whitespace and returns the model text as-is.
func Text(raw string) string {
	return strings.TrimSpace(raw)
}
