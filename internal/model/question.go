package model

// Difficulty tiers the question bank by how hard a question is
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

// Label returns the Portuguese difficulty label used in history messages
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "fácil"
	case DifficultyMedium:
		return "média"
	case DifficultyHard:
		return "difícil"
	default:
		return "normal"
	}
}

// Question is one trivia item from the static catalogue.
// JSON tags match the bundled catalogue file, which keeps the original
// Portuguese field names.
type Question struct {
	ID          int        `json:"id"`
	Theme       Theme      `json:"tema"`
	Difficulty  Difficulty `json:"dificuldade"`
	Prompt      string     `json:"pergunta"`
	Options     []string   `json:"opcoes"`
	CorrectIdx  int        `json:"respostaCorreta"`
	Explanation string     `json:"explicacao"`
}
