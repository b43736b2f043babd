package models

import "strings"

// UserProfile is the single local user. Its presence decides whether
// onboarding is required.
type UserProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
}

// ProfileDraft carries the onboarding form input.
type ProfileDraft struct {
	Name         string
	Email        string
	ProfileImage string
}

// ProfileUpdate lists every field that can change after onboarding.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name         *string
	Email        *string
	ProfileImage *string
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.ProfileImage == nil
}

// Apply returns a copy of p with the non-nil fields of u merged in.
// Email is normalized the same way it is on creation.
func (u ProfileUpdate) Apply(p UserProfile) UserProfile {
	if u.Name != nil {
		p.Name = strings.TrimSpace(*u.Name)
	}
	if u.Email != nil {
		p.Email = NormalizeEmail(*u.Email)
	}
	if u.ProfileImage != nil {
		p.ProfileImage = *u.ProfileImage
	}
	return p
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
