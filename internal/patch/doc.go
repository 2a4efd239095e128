// Package patch removes defunct plugin references from Maven pom.xml files.
//
// Matching is textual, not structural: each [Rule] is a regular expression
// compiled with dot-matches-newline semantics and a non-greedy span, so a
// rule removes everything from its opening tag up to the nearest matching
// closing tag. Use [Apply] for the pure text transform and [Patcher] to
// rewrite files on disk.
package patch
