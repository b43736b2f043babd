package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is an optional geotag attached to a note.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// Label renders the coordinates with four decimals, e.g. "52.5200, 13.4050".
func (l Location) Label() string {
	return fmt.Sprintf("%.4f, %.4f", l.Latitude, l.Longitude)
}

// ParseLocation reads a "lat,lon" pair. ts is stored as the capture time.
func ParseLocation(s string, ts int64) (*Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("location must be lat,lon: %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad longitude: %w", err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("location out of range: %q", s)
	}
	return &Location{Latitude: lat, Longitude: lon, Timestamp: ts}, nil
}

// Note is a captured note. UpdatedAt equals CreatedAt: there is no edit path.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURI  string    `json:"imageUri,omitempty"`
	Location  *Location `json:"location,omitempty"`
	CreatedAt int64     `json:"createdAt"`
	UpdatedAt int64     `json:"updatedAt"`
}

// NoteDraft carries the compose form input.
type NoteDraft struct {
	Title    string
	Content  string
	ImageURI string
	Location *Location
}

// FilterNotes returns the notes whose title or content contains query,
// ignoring case. An empty query matches everything. Order is preserved.
func FilterNotes(notes []Note, query string) []Note {
	q := strings.ToLower(query)
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a copy of n that shares no memory with it.
func (n Note) Clone() Note {
	if n.Location != nil {
		loc := *n.Location
		n.Location = &loc
	}
	return n
}

// CloneNotes deep-copies notes. The result is never nil.
func CloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}

// CountWithImages returns how many notes carry an image reference.
func CountWithImages(notes []Note) int {
	n := 0
	for _, note := range notes {
		if note.ImageURI != "" {
			n++
		}
	}
	return n
}
