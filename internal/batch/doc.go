// Package batch drives a [patch.Patcher] over a root pom.xml and every
// child pom.xml matched by a glob pattern, one file at a time, and tallies
// the files that changed.
package batch
