package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
)

const (
	titleWidth   = 60
	previewWidth = 100
)

// AddNote composes a note: title, multi-line text, then optional photo and
// location.
func (a *App) AddNote(ctx context.Context) error {
	title, err := GetOptional(a.reader, "- Enter title", a.prompt)
	if err != nil {
		return err
	}
	text, err := GetMultiline(a.reader, "- Enter note text", a.prompt)
	if err != nil {
		return err
	}
	image, err := GetOptional(a.reader, "- Photo path or URI (optional)", a.prompt)
	if err != nil {
		return err
	}
	where, err := GetOptional(a.reader, "- Location as lat,lon (optional)", a.prompt)
	if err != nil {
		return err
	}

	d := models.NoteDraft{Title: title, Content: text, ImageURI: image}
	if where != "" {
		loc, err := models.ParseLocation(where, a.now().UnixMilli())
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		d.Location = loc
	}

	if _, err := a.notes.Create(ctx, d); err != nil {
		return a.fail(ctx, err, "Could not save your note. Please try again.")
	}
	fmt.Fprintln(a.out, "Note saved.")
	return nil
}

// List prints every note, newest first.
func (a *App) List(ctx context.Context) error {
	notes := a.notes.List()
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes yet. Type 'addnote' to capture one.")
		return nil
	}
	a.printNotes(notes)
	return nil
}

// Search prints the notes whose title or content contains query.
func (a *App) Search(ctx context.Context, query string) error {
	notes := a.notes.Search(query)
	if len(notes) == 0 {
		fmt.Fprintf(a.out, "No notes match %q.\n", query)
		return nil
	}
	a.printNotes(notes)
	return nil
}

func (a *App) printNotes(notes []models.Note) {
	now := a.now()
	for i, n := range notes {
		title := n.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(a.out, "%d. %s  [%s]\n", i+1, models.Truncate(title, titleWidth), models.RelativeTime(n.CreatedAt, now))
		if n.Content != "" {
			preview := strings.ReplaceAll(n.Content, "\n", " ")
			fmt.Fprintf(a.out, "   %s\n", models.Truncate(preview, previewWidth))
		}
		if n.ImageURI != "" {
			fmt.Fprintf(a.out, "   photo: %s\n", n.ImageURI)
		}
		if n.Location != nil {
			fmt.Fprintf(a.out, "   location: %s\n", n.Location.Label())
		}
	}
}
