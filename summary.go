package opengraph

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ellipsis is appended to summaries that were cut short.
const ellipsis = "…"

var stripPolicy = bluemonday.StrictPolicy()

// Summary returns plain text of at most maxWords words taken from the start
// of an HTML fragment. Tags are stripped, entities decoded and whitespace
// collapsed. When words were dropped the result ends with an ellipsis.
func Summary(content string, maxWords int) string {
	if strings.TrimSpace(content) == "" || maxWords <= 0 {
		return ""
	}
	// Block-level boundaries must still separate words once tags are gone.
	content = blockBoundary.Replace(content)
	text := html.UnescapeString(stripPolicy.Sanitize(content))
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ") + ellipsis
}

var blockBoundary = strings.NewReplacer(
	"</p>", "</p> ",
	"<br>", "<br> ",
	"<br/>", "<br/> ",
	"<br />", "<br /> ",
	"</li>", "</li> ",
	"</h1>", "</h1> ",
	"</h2>", "</h2> ",
	"</h3>", "</h3> ",
	"</h4>", "</h4> ",
	"</div>", "</div> ",
	"</blockquote>", "</blockquote> ",
	"</td>", "</td> ",
)
