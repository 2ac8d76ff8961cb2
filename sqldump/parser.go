package sqldump

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wikidex/wikidex"
)

// Parser reconstructs wiki records from a SQL dump held in memory.
// Parsers are stateless; all intermediate mappings flow through return
// values, so a single Parser may be reused across dumps.
type Parser struct {
	// BaseURL is the wiki's public page URL prefix used to derive record
	// URLs (BaseURL + "/" + title with spaces as underscores).
	BaseURL string
}

// Stats reports coarse per-phase counts from one parse run.
type Stats struct {
	Pages     int
	Revisions int
	Texts     int
	Matched   int
}

// Parse extracts all main-namespace pages with non-empty content from
// the dump text. Malformed tuples are skipped individually and never
// abort the parse; pages lacking a matching revision or text row are
// filtered out as a normal outcome, not an error. Records are returned
// in ascending page id order.
func (p *Parser) Parse(dump string) ([]*wikidex.Record, *Stats) {
	pages := p.extractPages(dump)
	revisions := p.extractRevisions(dump)
	texts := p.extractTexts(dump)

	recs := p.assemble(pages, revisions, texts)

	return recs, &Stats{
		Pages:     len(pages),
		Revisions: len(revisions),
		Texts:     len(texts),
		Matched:   len(recs),
	}
}

// extractPages builds the page id to title mapping. Only rows in the
// main content namespace (namespace field "0") are kept; on duplicate
// page ids the last row wins.
func (p *Parser) extractPages(dump string) map[int]string {
	pages := make(map[int]string)
	for _, stmt := range Statements(dump, "page") {
		for _, tuple := range Tuples(stmt) {
			fields := SplitValues(tuple)
			if len(fields) < 3 {
				continue
			}
			pageID, err := strconv.Atoi(fields[0])
			if err != nil {
				continue
			}
			if fields[1] != "0" {
				continue
			}
			pages[pageID] = Unquote(fields[2])
		}
	}
	return pages
}

// extractRevisions builds the page id to latest revision id mapping.
// "Latest" is the maximum revision id seen for the page, so the result
// is independent of tuple order.
func (p *Parser) extractRevisions(dump string) map[int]int {
	revisions := make(map[int]int)
	for _, stmt := range Statements(dump, "revision") {
		for _, tuple := range Tuples(stmt) {
			fields := SplitValues(tuple)
			if len(fields) < 2 {
				continue
			}
			revID, err := strconv.Atoi(fields[0])
			if err != nil {
				continue
			}
			pageID, err := strconv.Atoi(fields[1])
			if err != nil {
				continue
			}
			if cur, ok := revisions[pageID]; !ok || revID > cur {
				revisions[pageID] = revID
			}
		}
	}
	return revisions
}

// extractTexts builds the text id to decoded content mapping. Decoding
// is applied once at ingestion; when it cannot decode, the raw literal
// is retained rather than failing the parse.
func (p *Parser) extractTexts(dump string) map[int]string {
	texts := make(map[int]string)
	for _, stmt := range Statements(dump, "text") {
		for _, tuple := range Tuples(stmt) {
			fields := SplitValues(tuple)
			if len(fields) < 2 {
				continue
			}
			textID, err := strconv.Atoi(fields[0])
			if err != nil {
				continue
			}
			texts[textID] = DecodeContent(Unquote(fields[1]))
		}
	}
	return texts
}

// assemble joins the three mappings into output records. A revision's
// text row shares its id in the MediaWiki schema; that convention is the
// join key and is not re-derived from the dump.
func (p *Parser) assemble(pages map[int]string, revisions map[int]int, texts map[int]string) []*wikidex.Record {
	pageIDs := make([]int, 0, len(pages))
	for id := range pages {
		pageIDs = append(pageIDs, id)
	}
	sort.Ints(pageIDs)

	var recs []*wikidex.Record
	for _, pageID := range pageIDs {
		revID, ok := revisions[pageID]
		if !ok {
			continue
		}
		content, ok := texts[revID]
		if !ok {
			continue
		}
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}

		title := pages[pageID]
		recs = append(recs, &wikidex.Record{
			PageID:  pageID,
			Title:   title,
			Content: content,
			URL:     p.pageURL(title),
		})
	}
	return recs
}

func (p *Parser) pageURL(title string) string {
	base := strings.TrimSuffix(p.BaseURL, "/")
	return base + "/" + strings.ReplaceAll(title, " ", "_")
}
