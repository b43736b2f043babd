package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserProfile_JSONLayout(t *testing.T) {
	p := UserProfile{ID: "1", Name: "Ana", Email: "ana@x.com", CreatedAt: 1000}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"Ana","email":"ana@x.com","createdAt":1000}`, string(b))

	p.ProfileImage = "file:///img.jpg"
	b, err = json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"profileImage":"file:///img.jpg"`)
}

func TestNote_JSONLayout_OptionalFieldsOmitted(t *testing.T) {
	n := Note{ID: "2", Title: "Hi", CreatedAt: 2000, UpdatedAt: 2000}
	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"2","title":"Hi","content":"","createdAt":2000,"updatedAt":2000}`, string(b))

	n.Location = &Location{Latitude: 1.5, Longitude: -2.25, Timestamp: 3}
	n.ImageURI = "content://photo/1"
	b, err = json.Marshal(n)
	require.NoError(t, err)

	var back Note
	require.NoError(t, json.Unmarshal(b, &back))
	if d := cmp.Diff(n, back); d != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestProfileUpdate_Apply(t *testing.T) {
	base := UserProfile{ID: "1", Name: "Ana", Email: "ana@x.com", CreatedAt: 1000}

	got := ProfileUpdate{Email: strPtr("  New@Example.COM ")}.Apply(base)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, int64(1000), got.CreatedAt)

	got = ProfileUpdate{Name: strPtr(" Bo "), ProfileImage: strPtr("img")}.Apply(base)
	assert.Equal(t, "Bo", got.Name)
	assert.Equal(t, "img", got.ProfileImage)

	assert.True(t, ProfileUpdate{}.IsEmpty())
	assert.False(t, ProfileUpdate{Name: strPtr("x")}.IsEmpty())
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		draft   ProfileDraft
		wantErr string
	}{
		{"ok", ProfileDraft{Name: "Ana", Email: "ana@x.com"}, ""},
		{"blank name", ProfileDraft{Name: "  ", Email: "ana@x.com"}, "please enter your name"},
		{"blank email", ProfileDraft{Name: "Ana", Email: ""}, "please enter your email"},
		{"no at", ProfileDraft{Name: "Ana", Email: "ana.x.com"}, "valid email"},
		{"no dot in domain", ProfileDraft{Name: "Ana", Email: "ana@x"}, "valid email"},
		{"space inside", ProfileDraft{Name: "Ana", Email: "a na@x.com"}, "valid email"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateProfile(tc.draft)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrValidation)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	require.NoError(t, ValidateUpdate(ProfileUpdate{}))
	require.NoError(t, ValidateUpdate(ProfileUpdate{ProfileImage: strPtr("")}))
	require.ErrorIs(t, ValidateUpdate(ProfileUpdate{Name: strPtr(" ")}), common.ErrValidation)
	require.ErrorIs(t, ValidateUpdate(ProfileUpdate{Email: strPtr("bad")}), common.ErrValidation)
	require.NoError(t, ValidateUpdate(ProfileUpdate{Name: strPtr("Bo"), Email: strPtr("bo@y.org")}))
}

func TestValidateNoteDraft(t *testing.T) {
	require.ErrorIs(t, ValidateNoteDraft(NoteDraft{Title: " ", Content: "\n"}), common.ErrValidation)
	require.NoError(t, ValidateNoteDraft(NoteDraft{Title: "Hi"}))
	require.NoError(t, ValidateNoteDraft(NoteDraft{Content: "body"}))
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation(" 52.52, 13.405 ", 99)
	require.NoError(t, err)
	assert.Equal(t, &Location{Latitude: 52.52, Longitude: 13.405, Timestamp: 99}, loc)
	assert.Equal(t, "52.5200, 13.4050", loc.Label())

	for _, bad := range []string{"", "1", "a,b", "1,2,3", "91,0", "0,181"} {
		_, err := ParseLocation(bad, 0)
		assert.Error(t, err, bad)
	}
}

func TestFilterNotes(t *testing.T) {
	notes := []Note{
		{ID: "3", Title: "Groceries", Content: "milk"},
		{ID: "2", Title: "Trip", Content: "Pack the MILK cooler"},
		{ID: "1", Title: "Ideas", Content: "none"},
	}

	got := FilterNotes(notes, "Milk")
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "2", got[1].ID)

	assert.Len(t, FilterNotes(notes, ""), 3)
	assert.Empty(t, FilterNotes(notes, "zebra"))
	assert.NotNil(t, FilterNotes(nil, "x"))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	ms := func(d time.Duration) int64 { return now.Add(-d).UnixMilli() }

	tests := []struct {
		ts   int64
		want string
	}{
		{ms(10 * time.Second), "Just now"},
		{ms(5 * time.Minute), "5m ago"},
		{ms(59 * time.Minute), "59m ago"},
		{ms(3 * time.Hour), "3h ago"},
		{ms(2 * 24 * time.Hour), "2d ago"},
		{ms(10 * 24 * time.Hour), "Jun 5"},
		{time.Date(2024, time.December, 31, 9, 0, 0, 0, time.UTC).UnixMilli(), "Dec 31, 2024"},
		{now.Add(time.Hour).UnixMilli(), "Just now"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, RelativeTime(tc.ts, now))
	}
}

func TestMemberSince(t *testing.T) {
	ts := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, "March 4, 2025", MemberSince(ts, time.UTC))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "hel...", Truncate("hello", 3))
	assert.Equal(t, "привет...", Truncate("привет мир", 6))
}

func TestCloneNotes(t *testing.T) {
	notes := []Note{
		{ID: "a", Location: &Location{Latitude: 1, Longitude: 2, Timestamp: 3}},
		{ID: "b"},
	}

	got := CloneNotes(notes)
	if d := cmp.Diff(notes, got); d != "" {
		t.Fatalf("clone differs (-want +got):\n%s", d)
	}
	assert.NotSame(t, notes[0].Location, got[0].Location)
	assert.Nil(t, got[1].Location)

	assert.NotNil(t, CloneNotes(nil))
}

func TestCountWithImages(t *testing.T) {
	assert.Equal(t, 0, CountWithImages(nil))
	assert.Equal(t, 2, CountWithImages([]Note{{ImageURI: "a.jpg"}, {}, {ImageURI: "file:///b.png"}}))
}
