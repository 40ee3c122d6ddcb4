package problem

import (
	"strings"

	"github.com/artem13815/prepai/pkg/apperr"
	"github.com/artem13815/prepai/pkg/llmjson"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// ParseDifficulty accepts any casing of Easy, Medium or Hard.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "":
		return "", apperr.Validation("difficulty is required")
	default:
		return "", apperr.Validation("difficulty must be one of Easy, Medium, Hard")
	}
}

type Example struct {
	Input       llmjson.Text `json:"input"`
	Output      llmjson.Text `json:"output"`
	Explanation llmjson.Text `json:"explanation,omitempty"`
}

// Boilerplates holds the starter code per supported language.
type Boilerplates struct {
	JavaScript string `json:"javascript"`
	Python     string `json:"python"`
	Java       string `json:"java"`
	Cpp        string `json:"cpp"`
}

type Problem struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Examples     []Example    `json:"examples"`
	Boilerplates Boilerplates `json:"boilerplates"`
}
