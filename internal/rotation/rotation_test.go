package rotation

import (
	"testing"
	"time"

	"github.com/storyloop/storyloop/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthors() []models.StoryAuthor {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []models.StoryAuthor{
		{AuthorID: "author-1", EntryDate: base},
		{AuthorID: "author-2", EntryDate: base.Add(5 * time.Minute)},
		{AuthorID: "author-3", EntryDate: base.Add(10 * time.Minute)},
	}
}

func TestNext(t *testing.T) {
	authors := testAuthors()

	tests := []struct {
		name    string
		current string
		want    string
	}{
		{name: "first to second", current: "author-1", want: "author-2"},
		{name: "second to third", current: "author-2", want: "author-3"},
		{name: "wraps from last to first", current: "author-3", want: "author-1"},
		{name: "unknown current restarts at first", current: "author-gone", want: "author-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Next(authors, tt.current)
			require.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestNextSingleAuthor(t *testing.T) {
	authors := []models.StoryAuthor{
		{AuthorID: "author-solo", EntryDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}

	next, err := Next(authors, "author-solo")
	require.NoError(t, err)
	assert.Equal(t, "author-solo", next)
}

func TestNextNoAuthors(t *testing.T) {
	_, err := Next(nil, "author-1")
	assert.ErrorIs(t, err, ErrNoAuthors)
}

func TestNextOrdersByEntryDate(t *testing.T) {
	// Input order should not matter; rotation follows entry dates.
	authors := testAuthors()
	shuffled := []models.StoryAuthor{authors[2], authors[0], authors[1]}

	next, err := Next(shuffled, "author-1")
	require.NoError(t, err)
	assert.Equal(t, "author-2", next)
}
