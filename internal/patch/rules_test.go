package patch

import (
	"strings"
	"testing"
)

const repositoryBlock = `<pluginRepository>
      <id>trojanbug.plugins</id>
      <url>http://maven.trojanbug.eu/plugins</url>
    </pluginRepository>`

const pluginBlock = `<plugin>
          <groupId>eu.trojanbug.maven.plugins</groupId>
          <artifactId>propertymapper-maven-plugin</artifactId>
          <version>1.0</version>
        </plugin>`

func TestApply_NonGreedySiblings(t *testing.T) {
	input := "<pluginRepository><id>trojanbug.plugins</id>X</pluginRepository>\n" +
		"<pluginRepository><id>other</id>Y</pluginRepository>"
	want := "\n<pluginRepository><id>other</id>Y</pluginRepository>"

	got, removals := Apply(input, DefaultRules())
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
	if len(removals) != 1 || removals[0].Rule != RepositoryRule.Name || removals[0].Count != 1 {
		t.Errorf("removals = %+v, want one %s removal", removals, RepositoryRule.Name)
	}
}

func TestApply_MultiLineBlocks(t *testing.T) {
	tests := []struct {
		name  string
		block string
		rule  string
	}{
		{"plugin repository", repositoryBlock, RepositoryRule.Name},
		{"propertymapper plugin", pluginBlock, PropertyMapperRule.Name},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix := "<project>\n  <build>\n    "
			suffix := "\n  </build>\n</project>\n"
			got, removals := Apply(prefix+tt.block+suffix, DefaultRules())
			if got != prefix+suffix {
				t.Errorf("Apply() = %q, want %q", got, prefix+suffix)
			}
			if len(removals) != 1 || removals[0].Rule != tt.rule {
				t.Errorf("removals = %+v, want one %s removal", removals, tt.rule)
			}
		})
	}
}

func TestApply_BothRules(t *testing.T) {
	input := "<a>\n" + repositoryBlock + "\n<b>\n" + pluginBlock + "\n</b></a>"
	got, removals := Apply(input, DefaultRules())
	if want := "<a>\n\n<b>\n\n</b></a>"; got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
	if len(removals) != 2 {
		t.Fatalf("len(removals) = %d, want 2", len(removals))
	}
	if removals[0].Rule != RepositoryRule.Name || removals[1].Rule != PropertyMapperRule.Name {
		t.Errorf("removals out of rule order: %+v", removals)
	}
}

func TestApply_NoMatch(t *testing.T) {
	inputs := []string{
		"",
		"<project/>",
		"<pluginRepository><id>central</id></pluginRepository>",
		"<plugin><groupId>eu.trojanbug.maven.plugins</groupId><artifactId>other-plugin</artifactId></plugin>",
		// opening tag without a closing tag
		"<pluginRepository><id>trojanbug.plugins</id>",
	}
	for _, input := range inputs {
		got, removals := Apply(input, DefaultRules())
		if got != input {
			t.Errorf("Apply(%q) changed content to %q", input, got)
		}
		if len(removals) != 0 {
			t.Errorf("Apply(%q) removals = %+v, want none", input, removals)
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	input := "<x>" + repositoryBlock + pluginBlock + "</x>"
	once, _ := Apply(input, DefaultRules())
	twice, removals := Apply(once, DefaultRules())
	if once != twice {
		t.Errorf("second Apply changed content: %q -> %q", once, twice)
	}
	if len(removals) != 0 {
		t.Errorf("second Apply removals = %+v, want none", removals)
	}
}

func TestApply_EveryOccurrence(t *testing.T) {
	input := pluginBlock + "\n" + pluginBlock
	got, removals := Apply(input, DefaultRules())
	if got != "\n" {
		t.Errorf("Apply() = %q, want %q", got, "\n")
	}
	if len(removals) != 1 || removals[0].Count != 2 {
		t.Errorf("removals = %+v, want count 2", removals)
	}
}

func TestApply_NestedClosingTagCutsShort(t *testing.T) {
	// The first </plugin> ends the span even if it belongs to nested content.
	input := `<plugin><groupId>eu.trojanbug.maven.plugins</groupId><artifactId>propertymapper-maven-plugin</artifactId>` +
		`<x></plugin></x></plugin>`
	got, _ := Apply(input, DefaultRules())
	if got != "</x></plugin>" {
		t.Errorf("Apply() = %q, want %q", got, "</x></plugin>")
	}
}

func TestNewRule(t *testing.T) {
	r, err := NewRule("test", "", `<a>.*?</a>`)
	if err != nil {
		t.Fatalf("NewRule error: %v", err)
	}
	if !r.Pattern.MatchString("<a>\n</a>") {
		t.Error("rule should match across newlines")
	}

	_, err = NewRule("bad", "", `(`)
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error should name the rule, got %v", err)
	}
}
