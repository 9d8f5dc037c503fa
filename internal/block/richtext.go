package block

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var plainTextPolicy = bluemonday.StrictPolicy()

// PlainText strips every tag from a rich text fragment and decodes entities,
// leaving the text a reader would see.
func PlainText(fragment string) string {
	return html.UnescapeString(plainTextPolicy.Sanitize(fragment))
}
