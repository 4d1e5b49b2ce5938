// Package mimetype maps provider MIME type strings to display categories.
package mimetype

import "strings"

// Category is the icon/colour bucket a file is rendered with.
type Category string

const (
	CategoryFolder       Category = "folder"
	CategorySpreadsheet  Category = "spreadsheet"
	CategoryDocument     Category = "document"
	CategoryPresentation Category = "presentation"
	CategoryPDF          Category = "pdf"
	CategoryImage        Category = "image"
	CategoryMedia        Category = "media"
	CategoryArchive      Category = "archive"
	CategoryGeneric      Category = "generic"
)

// rules is evaluated in order; the first rule with any matching substring
// wins. The order is significant: folder must precede spreadsheet, which
// must precede the generic fallback.
var rules = []struct {
	substrings []string
	category   Category
}{
	{[]string{"folder"}, CategoryFolder},
	{[]string{"spreadsheet"}, CategorySpreadsheet},
	{[]string{"document", "msword", "wordprocessingml"}, CategoryDocument},
	{[]string{"presentation", "ms-powerpoint", "presentationml"}, CategoryPresentation},
	{[]string{"pdf"}, CategoryPDF},
	{[]string{"image"}, CategoryImage},
	{[]string{"audio", "mp3", "mp4", "video"}, CategoryMedia},
	{[]string{"zip", "rar", "tar", "compressed"}, CategoryArchive},
}

// Categorize returns the category for a MIME type string. An empty or
// unrecognized MIME type falls through to CategoryGeneric.
func Categorize(mimeType string) Category {
	if mimeType == "" {
		return CategoryGeneric
	}
	for _, r := range rules {
		for _, sub := range r.substrings {
			if strings.Contains(mimeType, sub) {
				return r.category
			}
		}
	}
	return CategoryGeneric
}
