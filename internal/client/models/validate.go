package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateProfile checks the onboarding form.
func ValidateProfile(d ProfileDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: please enter your name", common.ErrValidation)
	}
	return validateEmail(d.Email)
}

// ValidateUpdate checks only the fields that are set. Edits may not blank
// the name or email.
func ValidateUpdate(u ProfileUpdate) error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", common.ErrValidation)
	}
	if u.Email != nil {
		return validateEmail(*u.Email)
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: please enter your email", common.ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: please enter a valid email address", common.ErrValidation)
	}
	return nil
}

// ValidateNoteDraft rejects a note with neither title nor content.
func ValidateNoteDraft(d NoteDraft) error {
	if strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == "" {
		return fmt.Errorf("%w: please add a title or content to your note", common.ErrValidation)
	}
	return nil
}
