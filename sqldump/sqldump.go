// Package sqldump reconstructs a wiki's page contents from a raw SQL
// dump of the page, revision, and text tables, without a database engine
// available to execute the INSERT statements.
//
// The dump is processed in three passes that build independent mappings
// (page id to title, page id to latest revision id, text id to decoded
// content), which are then joined in memory the way an indexed three-way
// join would resolve them. Only INSERT INTO statements for the three
// fixed tables are understood; this is not a SQL parser.
package sqldump
