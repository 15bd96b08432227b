// Package prompt turns a generation request into the system and user
// messages sent to the chat gateway.
package prompt

import (
	"fmt"

	"med-estudia/internal/domain"

	"github.com/tmc/langchaingo/prompts"
)

// Pair is the system and user prompt for one gateway call.
type Pair struct {
	System string
	User   string
}

type templateKey struct {
	mode     domain.Mode
	language domain.Language
}

// Builder renders prompts from fixed templates. It holds no mutable state and
// is safe for concurrent use.
type Builder struct {
	templates map[templateKey]prompts.PromptTemplate
}

func NewBuilder() *Builder {
	return &Builder{
		templates: map[templateKey]prompts.PromptTemplate{
			{domain.ModeMCQ, domain.LanguageES}:     prompts.NewPromptTemplate(mcqES, []string{"topic", "difficulty"}),
			{domain.ModeMCQ, domain.LanguageEN}:     prompts.NewPromptTemplate(mcqEN, []string{"topic", "difficulty"}),
			{domain.ModeQuiz, domain.LanguageES}:    prompts.NewPromptTemplate(quizES, []string{"topic", "count"}),
			{domain.ModeQuiz, domain.LanguageEN}:    prompts.NewPromptTemplate(quizEN, []string{"topic", "count"}),
			{domain.ModeExplain, domain.LanguageES}: prompts.NewPromptTemplate(explainES, []string{"topic"}),
			{domain.ModeExplain, domain.LanguageEN}: prompts.NewPromptTemplate(explainEN, []string{"topic"}),
		},
	}
}

// SystemPrompt depends on the language only.
func SystemPrompt(language domain.Language) string {
	if language == domain.LanguageES {
		return systemES
	}
	return systemEN
}

// Build returns the prompt pair for req. Unknown request variants yield an
// INVALID_REQUEST_TYPE error.
func (b *Builder) Build(req domain.GenerationRequest) (Pair, error) {
	var (
		language domain.Language
		values   map[string]any
	)

	switch r := req.(type) {
	case domain.MCQRequest:
		language = r.Language
		values = map[string]any{
			"topic":      r.Topic,
			"difficulty": difficultyLabel(r.Difficulty, r.Language),
		}
	case domain.QuizRequest:
		language = r.Language
		values = map[string]any{
			"topic": r.Topic,
			"count": r.EffectiveCount(),
		}
	case domain.ExplainRequest:
		language = r.Language
		values = map[string]any{
			"topic": r.Topic,
		}
	default:
		return Pair{}, domain.NewInvalidRequestTypeError(fmt.Sprintf("%T", req))
	}

	if language != domain.LanguageES {
		language = domain.LanguageEN
	}

	tmpl, ok := b.templates[templateKey{req.Mode(), language}]
	if !ok {
		return Pair{}, domain.NewInvalidRequestTypeError(string(req.Mode()))
	}

	user, err := tmpl.Format(values)
	if err != nil {
		return Pair{}, domain.NewInternalError("failed to render prompt", err)
	}

	return Pair{System: SystemPrompt(language), User: user}, nil
}

func difficultyLabel(d domain.Difficulty, language domain.Language) string {
	switch d {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
	default:
		d = domain.DifficultyMedium
	}
	if language != domain.LanguageES {
		return string(d)
	}
	switch d {
	case domain.DifficultyEasy:
		return "Fácil"
	case domain.DifficultyHard:
		return "Difícil"
	default:
		return "Medio"
	}
}
