// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		InvalidColorCodeId,
		InvalidChannelId,
		ConfigLoadFailedId,
		InvalidOutputFormatId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if InvalidColorCodeId != 1 {
		t.Errorf("InvalidColorCodeId = %d, want 1", InvalidColorCodeId)
	}
}

func TestGet_EveryId(t *testing.T) {
	for _, id := range []Id{InvalidColorCodeId, InvalidChannelId, ConfigLoadFailedId, InvalidOutputFormatId} {
		issue := Get(id)
		if issue == nil {
			t.Fatalf("Get(%d) returned nil", id)
		}
		if issue.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, issue.Id())
		}
		if strings.TrimSpace(string(issue.mdMsg)) == "" {
			t.Errorf("Get(%d) has empty markdown", id)
		}
	}

	if Get(0) != nil {
		t.Error("Get(0) should return nil")
	}
	if len(catalog) != 4 {
		t.Errorf("len(catalog) = %d, want 4", len(catalog))
	}
}

func TestIssue_Render(t *testing.T) {
	out, err := Get(InvalidColorCodeId).Render("notty")
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(out, "Invalid color code") {
		t.Errorf("rendered output should contain the title, got:\n%s", out)
	}
	if !strings.Contains(out, "See also") {
		t.Errorf("rendered output should list doc links, got:\n%s", out)
	}
}

func TestIssue_RenderUsesRenderer(t *testing.T) {
	orig := render
	t.Cleanup(func() { render = orig })

	var gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotStyle = stylePath
		return in, nil
	}

	out, err := Get(InvalidChannelId).Render("dark")
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want dark", gotStyle)
	}
	if strings.Contains(out, "See also") {
		t.Error("issues without links should not render a See also section")
	}
}
