// Package wikidex extracts a wiki's page contents into a local knowledge
// base and answers questions about it. Content can be reconstructed
// offline from a raw SQL dump of the page/revision/text tables, scraped
// live from the MediaWiki HTTP API, or imported from an XML export; all
// three producers emit the same record shape, which is persisted and
// served to a chat bot.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or external system
// (e.g., sqlite/, mediawiki/, gemini/).
package wikidex
