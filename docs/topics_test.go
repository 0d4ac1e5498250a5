package docs

import (
	"bufio"
	"regexp"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (excluding readme.md) is listed in readme.md.

	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("failed to load readme: %v", err)
	}

	var topicsInReadme []string
	scanner := bufio.NewScanner(strings.NewReader(readme))
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("topic listed in readme cannot be loaded: %v", err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestOutline(t *testing.T) {
	headings, err := Outline("trading")
	if err != nil {
		t.Fatal(err)
	}
	if len(headings) == 0 {
		t.Fatal("Outline() returned no headings")
	}
	if headings[0] != "Trading" {
		t.Errorf("first heading = %q, want Trading", headings[0])
	}
	want := map[string]bool{"Buying": false, "Selling": false, "Persistence": false}
	for _, h := range headings {
		if _, ok := want[h]; ok {
			want[h] = true
		}
	}
	for h, seen := range want {
		if !seen {
			t.Errorf("Outline() misses section %q", h)
		}
	}
}

func TestGetTopics_Star(t *testing.T) {
	content, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Trading", "# Strategy"} {
		if !strings.Contains(content, want) {
			t.Errorf("GetTopics(*) misses %q", want)
		}
	}
}
