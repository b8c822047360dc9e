package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newTestSelect() SingleSelect {
	items := []SingleSelectItem{
		{Label: "ベーシック", Value: "ベーシック"},
		{Label: "スタンダード", Value: "スタンダード"},
		{Label: "プレミアム", Value: "プレミアム"},
	}
	c := lipgloss.Color("#ffffff")
	return NewSingleSelect(items, c, c, c, c, c, c)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSingleSelect_MoveDoesNotSelect(t *testing.T) {
	s := newTestSelect()
	s, changed := s.Update(key("down"))
	if changed {
		t.Error("cursor move reported a selection change")
	}
	if idx, _ := s.Selected(); idx != -1 {
		t.Errorf("expected no selection, got %d", idx)
	}
	if s.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", s.Cursor())
	}
}

func TestSingleSelect_SpaceSelects(t *testing.T) {
	s := newTestSelect()
	s, _ = s.Update(key("down"))
	s, changed := s.Update(key(" "))
	if !changed {
		t.Fatal("expected selection change")
	}
	if _, v := s.Selected(); v != "スタンダード" {
		t.Errorf("expected スタンダード, got %q", v)
	}

	s, changed = s.Update(key("enter"))
	if changed {
		t.Error("re-selecting the same item reported a change")
	}
}

func TestSingleSelect_CursorBounds(t *testing.T) {
	s := newTestSelect()
	s, _ = s.Update(key("up"))
	if s.Cursor() != 0 {
		t.Errorf("cursor moved above the first item: %d", s.Cursor())
	}
	for i := 0; i < 5; i++ {
		s, _ = s.Update(key("j"))
	}
	if s.Cursor() != 2 {
		t.Errorf("cursor moved past the last item: %d", s.Cursor())
	}
}

func TestSingleSelect_SelectAndMark(t *testing.T) {
	s := newTestSelect()
	s.Select("プレミアム")
	if idx, _ := s.Selected(); idx != 2 || s.Cursor() != 2 {
		t.Errorf("Select: selected=%d cursor=%d", idx, s.Cursor())
	}

	s.Mark("ベーシック")
	if idx, _ := s.Selected(); idx != 0 || s.Cursor() != 2 {
		t.Errorf("Mark moved the cursor or missed: selected=%d cursor=%d", idx, s.Cursor())
	}

	s.Select("ゴールド")
	if idx, v := s.Selected(); idx != -1 || v != "" {
		t.Errorf("unknown value kept a selection: %d %q", idx, v)
	}
}

func TestSingleSelect_View(t *testing.T) {
	s := newTestSelect()
	s.Select("スタンダード")
	out := s.View(60)
	for _, item := range s.Items {
		if !strings.Contains(out, item.Label) {
			t.Errorf("view missing %q", item.Label)
		}
	}
	if strings.Count(out, "◉") != 1 {
		t.Errorf("expected exactly one selected marker:\n%s", out)
	}
}
