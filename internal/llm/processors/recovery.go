package processors

import (
	"encoding/json"
	"regexp"

	"cv-parser-api/pkg/models"
	"cv-parser-api/pkg/utils"
)

// Completions are asked to be pure JSON, but models routinely wrap the object
// in markdown fences or conversational filler. Recovery strategies are tried
// in a fixed priority order; the first candidate that decodes wins.
var (
	jsonFencedBlock    = regexp.MustCompile("(?s)```json\n(.*?)\n```")
	genericFencedBlock = regexp.MustCompile("(?s)```\n(.*?)\n```")
	braceObject        = regexp.MustCompile(`(?s)\{.*\}`)
)

type recoveryFunc func(string) (string, bool)

var recoveryChain = []recoveryFunc{
	extractJSONFencedBlock,
	extractGenericFencedBlock,
	extractBraceObject,
}

// DecodeCompletion decodes the raw completion text into a structured mapping.
// If the text is not directly valid JSON, the recovery chain is applied:
// a ```json fenced block, then a generic fenced block, then the greedy
// first-brace-to-last-brace substring. When nothing decodes, a structuring
// error is returned.
func DecodeCompletion(raw string) (models.StructuredCV, error) {
	var cv models.StructuredCV
	if err := json.Unmarshal([]byte(raw), &cv); err == nil {
		return cv, nil
	}

	for _, recoverStep := range recoveryChain {
		candidate, ok := recoverStep(raw)
		if !ok {
			continue
		}
		cv = nil
		if err := json.Unmarshal([]byte(candidate), &cv); err == nil {
			return cv, nil
		}
	}

	return nil, utils.NewStructuringError("failed to parse LLM response as JSON")
}

func extractJSONFencedBlock(raw string) (string, bool) {
	if m := jsonFencedBlock.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	return "", false
}

func extractGenericFencedBlock(raw string) (string, bool) {
	if m := genericFencedBlock.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	return "", false
}

// extractBraceObject matches greedily from the first { to the last }
func extractBraceObject(raw string) (string, bool) {
	if m := braceObject.FindString(raw); m != "" {
		return m, true
	}
	return "", false
}
