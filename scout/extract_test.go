package scout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContentPrefersDocBody(t *testing.T) {
	page := `<html><body>
<nav>Bosh sahifa | Hujjatlar</nav>
<div class="doc-body"><p>1-modda. Asosiy matn.</p></div>
<footer>Mualliflik huquqi</footer>
</body></html>`

	content := ExtractContent(page)
	assert.Contains(t, content, "1-modda. Asosiy matn.")
	assert.NotContains(t, content, "Bosh sahifa")
	assert.NotContains(t, content, "Mualliflik huquqi")
}

func TestExtractContentSelectorOrder(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{
			name: "document-content container",
			page: `<div class="document-content"><p>Hujjat matni</p></div>`,
			want: "Hujjat matni",
		},
		{
			name: "article element",
			page: `<article><p>Modda matni</p></article>`,
			want: "Modda matni",
		},
		{
			name: "main element",
			page: `<main><p>Asosiy qism</p></main>`,
			want: "Asosiy qism",
		},
		{
			name: "content class",
			page: `<div class="content"><p>Kontent</p></div>`,
			want: "Kontent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, ExtractContent(tt.page), tt.want)
		})
	}
}

func TestExtractContentFallsBackToWholePage(t *testing.T) {
	page := `<html><body><span>Qaror matni konteynersiz</span></body></html>`
	assert.Contains(t, ExtractContent(page), "Qaror matni konteynersiz")
}

func TestExtractContentStripsScriptsAndEntities(t *testing.T) {
	page := `<main><script>alert("x")</script><p>Soliq ta&#39;tili &amp; imtiyozlar</p></main>`

	content := ExtractContent(page)
	assert.NotContains(t, content, "alert")
	assert.Contains(t, content, "Soliq ta'tili & imtiyozlar")
}

func TestExtractContentCapsLength(t *testing.T) {
	page := "<main>" + strings.Repeat("a", maxContentLength+10000) + "</main>"

	content := ExtractContent(page)
	assert.LessOrEqual(t, len([]rune(content)), maxContentLength)
}

func TestExtractContentEmptyPage(t *testing.T) {
	assert.Equal(t, "", ExtractContent(""))
	assert.Equal(t, "", ExtractContent("<html><body><script>x</script></body></html>"))
}
