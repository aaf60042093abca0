package bookpress

import (
	"strings"

	"github.com/coregx/bookpress/model"
)

// Formatter converts a raw publish submission into publishable content.
// Formatting is pure and synchronous; implementations must not touch storage.
//
// Implementations report unpublishable content with a FORMAT_ERROR, which the
// publish worker converts into a FAILED status event.
type Formatter interface {
	// Format produces the publishable payload for a submission.
	Format(sub model.PublishSubmission) (model.FormattedBook, error)
}

// StandardFormatter is the default Formatter. It normalizes whitespace in the
// submitted fields and rejects submissions whose required content is missing
// after normalization.
type StandardFormatter struct{}

// NewStandardFormatter creates the default formatter.
func NewStandardFormatter() *StandardFormatter {
	return &StandardFormatter{}
}

// Format implements Formatter.
func (f *StandardFormatter) Format(sub model.PublishSubmission) (model.FormattedBook, error) {
	book := model.FormattedBook{
		BookID: sub.BookID,
		Title:  strings.TrimSpace(sub.Title),
		Author: strings.TrimSpace(sub.Author),
		Text:   normalizeText(sub.Text),
		Genre:  strings.TrimSpace(sub.Genre),
	}

	switch {
	case book.Title == "":
		return model.FormattedBook{}, NewError(ErrCodeFormat, "submission has no title")
	case book.Author == "":
		return model.FormattedBook{}, NewError(ErrCodeFormat, "submission has no author")
	case book.Text == "":
		return model.FormattedBook{}, NewError(ErrCodeFormat, "submission has no text")
	}

	return book, nil
}

// normalizeText unifies line endings and strips surrounding whitespace.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimSpace(text)
}
