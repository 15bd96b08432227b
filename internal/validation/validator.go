package validation

import (
	"strings"

	"med-estudia/internal/domain"
	"med-estudia/internal/util"
)

// Validator provides request validation functionality
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuestionID accepts server-issued ids only.
func (v *Validator) ValidateQuestionID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewInvalidInputError("question id is required")
	}
	if !util.IsULID(strings.ToUpper(id)) {
		return domain.NewInvalidInputError("question id is not a valid id").WithContext("id", id)
	}
	return nil
}
