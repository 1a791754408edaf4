package domain

import "time"

// QuizDefinition is the personality quiz content, loaded from YAML at
// startup. Trait order matters: it is the tie-break for scoring.
type QuizDefinition struct {
	Traits    []TraitProfile `yaml:"traits" json:"traits"`
	Questions []QuizQuestion `yaml:"questions" json:"questions"`
}

type TraitProfile struct {
	Key     string `yaml:"key" json:"key"`
	Name    string `yaml:"name" json:"name"`
	Summary string `yaml:"summary" json:"summary"`
}

type QuizQuestion struct {
	ID      int          `yaml:"id" json:"id"`
	Prompt  string       `yaml:"prompt" json:"prompt"`
	Options []QuizOption `yaml:"options" json:"options"`
}

type QuizOption struct {
	Label string `yaml:"label" json:"label"`
	Trait string `yaml:"trait" json:"trait"`
}

type QuizAnswer struct {
	QuestionID int `json:"question_id"`
	Option     int `json:"option"`
}

type SubmitQuizInput struct {
	ClientID string       `json:"client_id"`
	Answers  []QuizAnswer `json:"answers"`
}

type QuizResult struct {
	Trait  TraitProfile   `json:"trait"`
	Scores map[string]int `json:"scores"`
}

type ChatInput struct {
	ClientID string `json:"client_id"`
	Message  string `json:"message"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}

type ChatTurn struct {
	Role    string    `json:"role"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// ClientState is the per-browser quiz/chat progress blob, keyed by a
// client-generated id. The server holds it but has no authority over it.
type ClientState struct {
	ClientID string      `json:"client_id"`
	Result   *QuizResult `json:"result,omitempty"`
	History  []ChatTurn  `json:"history,omitempty"`
}
