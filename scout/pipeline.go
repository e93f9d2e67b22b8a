package scout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/doniyor117/AdvoAi/ai"
	"github.com/doniyor117/AdvoAi/chunker"
	"github.com/doniyor117/AdvoAi/core"
	"github.com/doniyor117/AdvoAi/status"
	"github.com/doniyor117/AdvoAi/store"
)

const (
	defaultSearchDelay          = 2 * time.Second
	defaultJudgeDelay           = 500 * time.Millisecond
	defaultMaxResultsPerKeyword = 10
)

// Pipeline runs one discovery cycle: search, judge, ingest.
// Stages run strictly in order and items within a stage are processed
// sequentially to keep load on external endpoints low.
type Pipeline struct {
	store   store.Store
	judge   ai.RelevanceJudge
	search  SearchProvider
	scraper Scraper
	chunker *chunker.Chunker

	searchLimiter *rate.Limiter
	judgeLimiter  *rate.Limiter
	maxResults    int
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithSearchDelay sets the politeness delay between keyword searches.
// Default is 2 seconds.
func WithSearchDelay(delay time.Duration) Option {
	return func(p *Pipeline) error {
		if delay <= 0 {
			p.searchLimiter = rate.NewLimiter(rate.Inf, 1)
			return nil
		}
		p.searchLimiter = rate.NewLimiter(rate.Every(delay), 1)
		return nil
	}
}

// WithJudgeDelay sets the delay between relevance-judge calls.
// Default is 500 milliseconds.
func WithJudgeDelay(delay time.Duration) Option {
	return func(p *Pipeline) error {
		if delay <= 0 {
			p.judgeLimiter = rate.NewLimiter(rate.Inf, 1)
			return nil
		}
		p.judgeLimiter = rate.NewLimiter(rate.Every(delay), 1)
		return nil
	}
}

// WithMaxResults caps search hits per keyword.
// Default is 10.
func WithMaxResults(n int) Option {
	return func(p *Pipeline) error {
		if n < 1 {
			n = 1
		}
		p.maxResults = n
		return nil
	}
}

// WithChunker sets a custom chunker.
func WithChunker(c *chunker.Chunker) Option {
	return func(p *Pipeline) error {
		if c != nil {
			p.chunker = c
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a discovery pipeline.
func NewPipeline(st store.Store, judge ai.RelevanceJudge, search SearchProvider, scraper Scraper, opts ...Option) (*Pipeline, error) {
	if st == nil {
		return nil, ErrStoreRequired
	}
	if judge == nil {
		return nil, ErrJudgeRequired
	}
	if search == nil {
		return nil, ErrSearchProviderRequired
	}
	if scraper == nil {
		return nil, ErrScraperRequired
	}

	p := &Pipeline{
		store:         st,
		judge:         judge,
		search:        search,
		scraper:       scraper,
		chunker:       chunker.New(),
		searchLimiter: rate.NewLimiter(rate.Every(defaultSearchDelay), 1),
		judgeLimiter:  rate.NewLimiter(rate.Every(defaultJudgeDelay), 1),
		maxResults:    defaultMaxResultsPerKeyword,
		logger:        slog.Default().With("component", "scout"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// RunCycle executes a full discovery cycle, publishing progress to queue.
// Item failures are reported as error events and skipped; the returned
// error is non-nil only for fatal conditions such as context cancellation.
func (p *Pipeline) RunCycle(ctx context.Context, queue *status.Queue, keywords []string, dateFilter string) (core.ScoutReport, error) {
	var report core.ScoutReport

	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	if dateFilter == "" {
		dateFilter = DefaultDateFilter
	}

	progress := 5
	publish := func(t status.EventType, message string, details status.Details) {
		if details.Progress < progress {
			details.Progress = progress
		} else {
			progress = details.Progress
		}
		queue.Publish(status.NewEvent(t, message, details))
	}

	// SEARCH
	publish(status.EventSearch, "🔍 Qidiruv boshlandi...", status.Details{Progress: 5})

	var candidates []core.CandidateDocument
	for i, keyword := range keywords {
		if err := p.searchLimiter.Wait(ctx); err != nil {
			return report, err
		}

		query := fmt.Sprintf("site:lex.uz %s %s", keyword, dateFilter)
		results, err := p.search.Search(ctx, query, p.maxResults)
		if err != nil {
			p.logger.Warn("keyword search failed", "keyword", keyword, "err", err)
			publish(status.EventError,
				fmt.Sprintf("⚠️ '%s' qidirishda xatolik: %s", keyword, truncate(err.Error(), 50)),
				status.Details{})
			continue
		}

		for j := range results {
			if results[j].DecreeID == "" {
				if id := ExtractDecreeID(results[j].URL); id != "" {
					results[j].DecreeID = id
				} else {
					results[j].DecreeID = ExtractDecreeID(results[j].Title)
				}
			}
		}
		candidates = append(candidates, results...)

		publish(status.EventSearch,
			fmt.Sprintf("🔍 Qidiruv: '%s' - %d ta topildi", keyword, len(results)),
			status.Details{Progress: 5 + 15*i/len(keywords)})
	}

	candidates = dedupeByURL(candidates)
	report.Checked = len(candidates)

	publish(status.EventSearch,
		fmt.Sprintf("📄 Jami %d ta unikal hujjat topildi", len(candidates)),
		status.Details{Progress: 20})

	// JUDGE
	var relevant []core.CandidateDocument
	for i, candidate := range candidates {
		indexed, err := p.isAlreadyIndexed(ctx, candidate.URL)
		if err != nil {
			p.logger.Warn("existence check failed", "url", candidate.URL, "err", err)
		}
		if indexed {
			continue
		}

		if err := p.judgeLimiter.Wait(ctx); err != nil {
			return report, err
		}

		stageProgress := 20 + 50*i/max(len(candidates), 1)

		isRelevant, err := p.judge.JudgeRelevance(ctx, candidate.Title)
		if err != nil {
			// Fail open: an unreachable judge must not lose documents.
			p.logger.Warn("relevance judgment failed", "title", candidate.Title, "err", err)
			publish(status.EventError,
				fmt.Sprintf("⚠️ Baholashda xatolik: %s", truncate(err.Error(), 50)),
				status.Details{})
			isRelevant = true
		}

		if isRelevant {
			relevant = append(relevant, candidate)
			yes := true
			publish(status.EventJudge,
				fmt.Sprintf("✅ Mos: %s...", truncate(candidate.Title, 45)),
				status.Details{
					DocumentID: candidate.DecreeID,
					Title:      candidate.Title,
					URL:        candidate.URL,
					Relevance:  &yes,
					Progress:   stageProgress,
				})
		} else {
			no := false
			publish(status.EventJudge,
				fmt.Sprintf("❌ Mos emas: %s...", truncate(candidate.Title, 45)),
				status.Details{
					Title:     candidate.Title,
					URL:       candidate.URL,
					Relevance: &no,
					Progress:  stageProgress,
				})
		}
	}

	// INGEST
	for i, candidate := range relevant {
		chunkCount, err := p.ingest(ctx, candidate)
		if err != nil {
			p.logger.Warn("ingestion failed", "url", candidate.URL, "err", err)
			publish(status.EventError,
				fmt.Sprintf("⚠️ Saqlashda xatolik: %s", truncate(err.Error(), 50)),
				status.Details{})
			continue
		}
		if chunkCount == 0 {
			// Empty page, skip quietly.
			continue
		}

		report.Ingested++
		publish(status.EventIngest,
			fmt.Sprintf("📥 Saqlandi: %s... (%d chunk)", truncate(candidate.Title, 40), chunkCount),
			status.Details{
				DocumentID: candidate.DecreeID,
				Title:      candidate.Title,
				URL:        candidate.URL,
				Progress:   70 + 25*i/max(len(relevant), 1),
			})
	}

	return report, nil
}

// ingest scrapes, chunks and stores one document. Returns the number of
// chunks written; zero means the page yielded no usable text.
func (p *Pipeline) ingest(ctx context.Context, candidate core.CandidateDocument) (int, error) {
	rawHTML, err := p.scraper.Fetch(ctx, candidate.URL)
	if err != nil {
		return 0, err
	}

	content := ExtractContent(rawHTML)
	if content == "" {
		return 0, nil
	}

	documentID := candidate.DecreeID
	if documentID == "" {
		documentID = "unknown"
	}

	chunks := p.chunker.Chunk(content, documentID, candidate.Title, map[string]string{
		"source_url":   candidate.URL,
		"date_scraped": time.Now().UTC().Format(time.RFC3339),
	})
	if len(chunks) == 0 {
		return 0, nil
	}

	documents := make([]string, len(chunks))
	metadatas := make([]map[string]string, len(chunks))
	ids := make([]string, len(chunks))
	for i := range chunks {
		documents[i] = chunks[i].Text
		metadatas[i] = chunks[i].Metadata
		ids[i] = chunks[i].StoreID()
	}

	if err := p.store.Add(ctx, documents, metadatas, ids); err != nil {
		return 0, err
	}

	return len(chunks), nil
}

// isAlreadyIndexed checks whether any stored chunk carries the URL.
// Lookup failures count as "not indexed" so the cycle keeps going.
func (p *Pipeline) isAlreadyIndexed(ctx context.Context, url string) (bool, error) {
	if url == "" {
		return false, nil
	}

	ids, err := p.store.Get(ctx, "source_url", url)
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// dedupeByURL removes duplicate candidates, first occurrence wins.
// Candidates without a URL are dropped.
func dedupeByURL(candidates []core.CandidateDocument) []core.CandidateDocument {
	seen := make(map[string]struct{}, len(candidates))
	var unique []core.CandidateDocument

	for _, candidate := range candidates {
		if candidate.URL == "" {
			continue
		}
		if _, ok := seen[candidate.URL]; ok {
			continue
		}
		seen[candidate.URL] = struct{}{}
		unique = append(unique, candidate)
	}

	return unique
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
