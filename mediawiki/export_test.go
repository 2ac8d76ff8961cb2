package mediawiki_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikidex/wikidex"
	"github.com/wikidex/wikidex/mediawiki"
)

const exportXML = `<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.10/">
  <siteinfo><sitename>Example Wiki</sitename></siteinfo>
  <page>
    <title>Getting Started</title>
    <ns>0</ns>
    <id>1</id>
    <revision>
      <id>10</id>
      <text>Old intro.</text>
    </revision>
    <revision>
      <id>42</id>
      <text>Welcome to the wiki.</text>
    </revision>
  </page>
  <page>
    <title>Talk:Getting Started</title>
    <ns>1</ns>
    <id>2</id>
    <revision>
      <id>11</id>
      <text>Discussion.</text>
    </revision>
  </page>
  <page>
    <title>Empty</title>
    <ns>0</ns>
    <id>3</id>
    <revision>
      <id>12</id>
      <text>   </text>
    </revision>
  </page>
</mediawiki>`

func TestParseExport(t *testing.T) {
	t.Parallel()

	t.Run("keeps latest revision of main-namespace pages", func(t *testing.T) {
		t.Parallel()

		recs, err := mediawiki.ParseExport(strings.NewReader(exportXML), "https://example.com/wiki/")
		require.NoError(t, err)
		require.Len(t, recs, 1)

		assert.Equal(t, &wikidex.Record{
			PageID:  1,
			Title:   "Getting Started",
			Content: "Welcome to the wiki.",
			URL:     "https://example.com/wiki/Getting_Started",
		}, recs[0])
	})

	t.Run("rejects a non-export document", func(t *testing.T) {
		t.Parallel()

		_, err := mediawiki.ParseExport(strings.NewReader("<html></html>"), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, wikidex.EINVALID, wikidex.ErrorCode(err))
	})

	t.Run("rejects malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := mediawiki.ParseExport(strings.NewReader("<mediawiki><page>"), "https://example.com")
		require.Error(t, err)
	})
}
