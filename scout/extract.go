package scout

import (
	"html"
	"regexp"
	"strings"
)

// maxContentLength caps extracted document text.
const maxContentLength = 50000

// Pre-compiled regular expressions for HTML parsing performance.
var (
	scriptTag     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag   = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	headTag       = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	svgTag        = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments  = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockElements = regexp.MustCompile(`(?i)</?(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article|main)[^>]*>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	multiSpaces   = regexp.MustCompile(`[ \t]+`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// contentContainers are tried in order; the first match wins. Legal
// documents on lex.uz render the body inside one of these containers.
var contentContainers = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<div[^>]*class="[^"]*\bdoc-body\b[^"]*"[^>]*>(.*)</div>`),
	regexp.MustCompile(`(?is)<div[^>]*class="[^"]*\bdocument-content\b[^"]*"[^>]*>(.*)</div>`),
	regexp.MustCompile(`(?is)<article[^>]*>(.*)</article>`),
	regexp.MustCompile(`(?is)<main[^>]*>(.*)</main>`),
	regexp.MustCompile(`(?is)<div[^>]*class="[^"]*\bcontent\b[^"]*"[^>]*>(.*)</div>`),
}

// ExtractContent pulls the main document text out of a scraped page.
// It tries the known content containers first and falls back to the whole
// page, strips markup, normalizes whitespace and caps the result.
// Returns "" when the page yields no text.
func ExtractContent(rawHTML string) string {
	fragment := rawHTML
	for _, container := range contentContainers {
		if match := container.FindStringSubmatch(rawHTML); match != nil {
			fragment = match[1]
			break
		}
	}

	text := stripHTML(fragment)
	if text == "" && fragment != rawHTML {
		// Empty container, fall back to the whole page.
		text = stripHTML(rawHTML)
	}

	if len(text) > maxContentLength {
		cut := []rune(text)
		if len(cut) > maxContentLength {
			cut = cut[:maxContentLength]
		}
		text = string(cut)
	}

	return text
}

// stripHTML removes HTML tags and extracts readable text content.
func stripHTML(content string) string {
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = noscriptTag.ReplaceAllString(content, "")
	content = headTag.ReplaceAllString(content, "")
	content = svgTag.ReplaceAllString(content, "")
	content = htmlComments.ReplaceAllString(content, "")

	// Block boundaries become newlines, inline tags just disappear.
	content = blockElements.ReplaceAllString(content, "\n")
	content = allTags.ReplaceAllString(content, "")

	content = html.UnescapeString(content)

	content = multiSpaces.ReplaceAllString(content, " ")
	content = multiNewlines.ReplaceAllString(content, "\n\n")

	// Trim each line and remove empty lines.
	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}
