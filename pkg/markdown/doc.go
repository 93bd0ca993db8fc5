// Package markdown reads and writes the Markdown link index kept by the
// git backend.
//
// The index is a flat document: links without a category come first,
// then one "## <category>" heading per category followed by that
// category's links, one "[url](url)" paragraph each. Parse walks the
// goldmark AST of an existing index, treating every heading as the
// category of the links that follow it. Render groups links by category
// in first-seen order so the same input always yields the same file.
package markdown
