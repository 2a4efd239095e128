package patch

import (
	"fmt"
	"regexp"
)

// Rule is a fixed removal pattern applied to pom.xml content.
type Rule struct {
	Name        string
	Description string
	Pattern     *regexp.Regexp
}

// Removal records how many spans a rule removed from one file.
type Removal struct {
	Rule  string `json:"rule"`
	Count int    `json:"count"`
}

// NewRule compiles expr with the (?s) flag so that '.' also matches newlines.
func NewRule(name, description, expr string) (Rule, error) {
	re, err := regexp.Compile(`(?s)` + expr)
	if err != nil {
		return Rule{}, fmt.Errorf("compiling rule %s: %w", name, err)
	}
	return Rule{Name: name, Description: description, Pattern: re}, nil
}

func mustRule(name, description, expr string) Rule {
	r, err := NewRule(name, description, expr)
	if err != nil {
		panic(err)
	}
	return r
}

var (
	// RepositoryRule removes the trojanbug.plugins <pluginRepository> entry.
	RepositoryRule = mustRule(
		"plugin-repository",
		"trojanbug.plugins pluginRepository entry",
		`<pluginRepository>\s*<id>trojanbug\.plugins</id>.*?</pluginRepository>`,
	)

	// PropertyMapperRule removes the propertymapper-maven-plugin declaration.
	PropertyMapperRule = mustRule(
		"propertymapper-plugin",
		"eu.trojanbug.maven.plugins:propertymapper-maven-plugin declaration",
		`<plugin>\s*<groupId>eu\.trojanbug\.maven\.plugins</groupId>\s*<artifactId>propertymapper-maven-plugin</artifactId>.*?</plugin>`,
	)
)

// DefaultRules returns the removal rules in the order they are applied.
func DefaultRules() []Rule {
	return []Rule{RepositoryRule, PropertyMapperRule}
}

// Apply runs each rule over content in order and returns the result along
// with one Removal per rule that matched. Text outside removed spans is
// left untouched.
func Apply(content string, rules []Rule) (string, []Removal) {
	var removals []Removal
	for _, r := range rules {
		n := len(r.Pattern.FindAllStringIndex(content, -1))
		if n == 0 {
			continue
		}
		content = r.Pattern.ReplaceAllLiteralString(content, "")
		removals = append(removals, Removal{Rule: r.Name, Count: n})
	}
	return content, removals
}
