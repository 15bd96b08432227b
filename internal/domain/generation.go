package domain

import (
	"context"
	"strings"
)

// Mode selects which kind of content is generated.
type Mode string

const (
	ModeMCQ     Mode = "mcq"
	ModeQuiz    Mode = "quiz"
	ModeExplain Mode = "explain"
)

type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// ParseLanguage maps anything other than "es" to English, matching the
// prompt selection of the client apps.
func ParseLanguage(s string) Language {
	if strings.EqualFold(strings.TrimSpace(s), string(LanguageES)) {
		return LanguageES
	}
	return LanguageEN
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == LanguageES || l == LanguageEN
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty falls back to medium for unknown values.
func ParseDifficulty(s string) Difficulty {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d
	default:
		return DifficultyMedium
	}
}

// DefaultQuizCount is used when a quiz request carries no positive count.
const DefaultQuizCount = 5

// GenerationRequest is one of MCQRequest, QuizRequest or ExplainRequest.
type GenerationRequest interface {
	Mode() Mode
	isGenerationRequest()
}

type MCQRequest struct {
	Topic      string
	Difficulty Difficulty
	Language   Language
}

type QuizRequest struct {
	Topic    string
	Language Language
	Count    int
}

type ExplainRequest struct {
	Topic    string
	Language Language
}

func (MCQRequest) Mode() Mode     { return ModeMCQ }
func (QuizRequest) Mode() Mode    { return ModeQuiz }
func (ExplainRequest) Mode() Mode { return ModeExplain }

func (MCQRequest) isGenerationRequest()     {}
func (QuizRequest) isGenerationRequest()    {}
func (ExplainRequest) isGenerationRequest() {}

// EffectiveCount returns Count, or DefaultQuizCount when Count is not positive.
func (r QuizRequest) EffectiveCount() int {
	if r.Count <= 0 {
		return DefaultQuizCount
	}
	return r.Count
}

// MCQItem is a single multiple-choice question with four lettered options.
type MCQItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is an ordered set of questions.
type Quiz []MCQItem

// ExplanationRecord is a structured explanation of a medical topic.
type ExplanationRecord struct {
	Definition                string `json:"definition"`
	ClinicalFeatures          string `json:"clinicalFeatures"`
	Diagnosis                 string `json:"diagnosis"`
	Treatment                 string `json:"treatment"`
	LowResourceConsiderations string `json:"lowResourceConsiderations"`
}

// Result is one of MCQItem, Quiz or ExplanationRecord.
type Result interface {
	isResult()
}

func (MCQItem) isResult()           {}
func (Quiz) isResult()              {}
func (ExplanationRecord) isResult() {}

// ProviderChoice is a single completion choice returned by the gateway.
type ProviderChoice struct {
	Content      string
	FinishReason string
}

// ProviderResponse is the gateway's reply, uninterpreted.
type ProviderResponse struct {
	ID      string
	Model   string
	Choices []ProviderChoice
}

// FirstContent returns the first choice's message content, if any.
func (r *ProviderResponse) FirstContent() (string, bool) {
	if r == nil || len(r.Choices) == 0 {
		return "", false
	}
	content := r.Choices[0].Content
	return content, content != ""
}

// ChatGateway sends a system+user prompt pair to the chat-completion backend.
// Failures are *DomainError values with a gateway or configuration code.
type ChatGateway interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (*ProviderResponse, error)
}
