package rotation

import (
	"errors"
	"sort"

	"github.com/storyloop/storyloop/internal/models"
)

// ErrNoAuthors is returned when rotation is attempted on a story with no authors
var ErrNoAuthors = errors.New("story has no authors")

// Next computes the author whose turn follows currentAuthorID.
//
// Authors rotate in ascending entry-date order, wrapping from the last author
// back to the first. If currentAuthorID is not in the list (for example the
// author left the story), the first author is next. A single-author story
// rotates back to that author.
func Next(authors []models.StoryAuthor, currentAuthorID string) (string, error) {
	if len(authors) == 0 {
		return "", ErrNoAuthors
	}

	ordered := make([]models.StoryAuthor, len(authors))
	copy(ordered, authors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].EntryDate.Before(ordered[j].EntryDate)
	})

	for i, author := range ordered {
		if author.AuthorID == currentAuthorID {
			return ordered[(i+1)%len(ordered)].AuthorID, nil
		}
	}

	// Current author is no longer a member; restart the cycle.
	return ordered[0].AuthorID, nil
}
