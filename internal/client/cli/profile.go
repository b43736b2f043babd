package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
)

const noticeProfileSave = "Could not save your profile. Please try again."

// Setup runs onboarding: name, email and an optional photo.
func (a *App) Setup(ctx context.Context) error {
	fmt.Fprintln(a.prompt, "Let's set up your profile.")

	name, err := GetSimpleText(a.reader, "- Enter your name", a.prompt)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "- Enter your email", a.prompt)
	if err != nil {
		return err
	}
	photo, err := GetOptional(a.reader, "- Profile photo path or URI (optional)", a.prompt)
	if err != nil {
		return err
	}

	p, err := a.profiles.Create(ctx, models.ProfileDraft{Name: name, Email: email, ProfileImage: photo})
	if err != nil {
		return a.fail(ctx, err, noticeProfileSave)
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", p.Name)
	return nil
}

// Profile prints the current profile and a short summary of the notes.
func (a *App) Profile(ctx context.Context) error {
	p := a.profiles.Current()
	if p == nil {
		fmt.Fprintln(a.out, "No profile.")
		return nil
	}

	fmt.Fprintf(a.out, "Name:         %s\n", p.Name)
	fmt.Fprintf(a.out, "Email:        %s\n", p.Email)
	if p.ProfileImage != "" {
		fmt.Fprintf(a.out, "Photo:        %s\n", p.ProfileImage)
	}
	fmt.Fprintf(a.out, "Member since: %s\n", models.MemberSince(p.CreatedAt, a.now().Location()))
	notes := a.notes.List()
	fmt.Fprintf(a.out, "Notes:        %d\n", len(notes))
	fmt.Fprintf(a.out, "With images:  %d\n", models.CountWithImages(notes))
	return nil
}

// Edit changes name and email. An empty answer keeps the current value.
func (a *App) Edit(ctx context.Context) error {
	p := a.profiles.Current()
	if p == nil {
		return nil
	}

	var u models.ProfileUpdate

	name, err := GetOptional(a.reader, fmt.Sprintf("- Name [%s]", p.Name), a.prompt)
	if err != nil {
		return err
	}
	if name != "" && name != p.Name {
		u.Name = &name
	}

	email, err := GetOptional(a.reader, fmt.Sprintf("- Email [%s]", p.Email), a.prompt)
	if err != nil {
		return err
	}
	if email != "" && models.NormalizeEmail(email) != p.Email {
		u.Email = &email
	}

	if u.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing changed.")
		return nil
	}

	if _, err := a.profiles.Update(ctx, u); err != nil {
		return a.fail(ctx, err, noticeProfileSave)
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// Photo sets the profile photo reference. "-" removes it.
func (a *App) Photo(ctx context.Context) error {
	ref, err := GetOptional(a.reader, "- Photo path or URI ('-' to remove)", a.prompt)
	if err != nil {
		return err
	}
	if ref == "" {
		fmt.Fprintln(a.out, "Nothing changed.")
		return nil
	}
	if ref == "-" {
		ref = ""
	}

	if _, err := a.profiles.Update(ctx, models.ProfileUpdate{ProfileImage: &ref}); err != nil {
		return a.fail(ctx, err, noticeProfileSave)
	}
	if ref == "" {
		fmt.Fprintln(a.out, "Photo removed.")
	} else {
		fmt.Fprintln(a.out, "Photo updated.")
	}
	return nil
}

// Clear wipes all local data after confirmation and returns to onboarding.
func (a *App) Clear(ctx context.Context) error {
	answer, err := GetOptional(a.reader, "- This deletes your profile and all notes. Type 'yes' to confirm", a.prompt)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.profiles.ClearAll(ctx); err != nil {
		return a.fail(ctx, err, "Could not clear your data. Please try again.")
	}
	fmt.Fprintln(a.out, "All data cleared. Type 'setup' to start again.")
	return nil
}
