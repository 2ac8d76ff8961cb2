package mediawiki

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/wikidex/wikidex"
)

// ParseExport reads a MediaWiki XML export (Special:Export) and returns
// records for all main-namespace pages with non-empty content. When a
// page carries multiple revisions, the one with the highest revision id
// wins, matching the SQL dump parser's latest-revision rule.
func ParseExport(r io.Reader, baseURL string) ([]*wikidex.Record, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}

	root := doc.Root()
	if root == nil || root.Tag != "mediawiki" {
		return nil, wikidex.Errorf(wikidex.EINVALID, "not a MediaWiki export document")
	}

	base := strings.TrimSuffix(baseURL, "/")

	var recs []*wikidex.Record
	for _, page := range root.SelectElements("page") {
		if ns := elementText(page, "ns"); ns != "" && ns != "0" {
			continue
		}
		title := elementText(page, "title")
		if title == "" {
			continue
		}
		pageID, _ := strconv.Atoi(elementText(page, "id"))

		var latest *etree.Element
		latestID := -1
		for _, rev := range page.SelectElements("revision") {
			id, err := strconv.Atoi(elementText(rev, "id"))
			if err != nil {
				continue
			}
			if id > latestID {
				latestID = id
				latest = rev
			}
		}
		if latest == nil {
			continue
		}

		content := strings.TrimSpace(elementText(latest, "text"))
		if content == "" {
			continue
		}

		recs = append(recs, &wikidex.Record{
			PageID:  pageID,
			Title:   title,
			Content: content,
			URL:     base + "/" + strings.ReplaceAll(title, " ", "_"),
		})
	}

	return recs, nil
}

func elementText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return el.Text()
}
