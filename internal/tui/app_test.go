package tui

import (
	"testing"
	"time"

	"paisa/internal/model"
	"paisa/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func loadedApp(t *testing.T) App {
	t.Helper()
	a := NewApp("unused.db")
	snap := model.Snapshot{
		Transactions: []model.Transaction{
			{ID: "t1", Amount: 120, Category: model.CategoryMess, Method: model.MethodUPI, Date: time.Now()},
		},
		Budget: model.DefaultBudgetPolicy(),
	}
	m, _ := a.Update(DataLoadedMsg{Snapshot: snap})
	return m.(App)
}

func TestTabShortcutsFollowTabDefinitions(t *testing.T) {
	a := loadedApp(t)

	for i, tab := range components.Tabs {
		m, _ := a.Update(keyMsg(tab.Key))
		a = m.(App)
		if a.activeTab != i {
			t.Errorf("key %q: activeTab = %d, want %d", tab.Key, a.activeTab, i)
		}
	}

	// A letter with no tab leaves the selection alone
	a.activeTab = 2
	m, _ := a.Update(keyMsg('z'))
	if got := m.(App).activeTab; got != 2 {
		t.Errorf("unbound key changed tab to %d", got)
	}
}

func TestArrowTabCycling(t *testing.T) {
	a := loadedApp(t)
	a.activeTab = len(components.Tabs) - 1

	m, _ := a.Update(tea.KeyMsg(tea.Key{Type: tea.KeyRight}))
	a = m.(App)
	if a.activeTab != 0 {
		t.Errorf("right from last tab = %d, want wrap to 0", a.activeTab)
	}

	m, _ = a.Update(tea.KeyMsg(tea.Key{Type: tea.KeyLeft}))
	a = m.(App)
	if a.activeTab != len(components.Tabs)-1 {
		t.Errorf("left from first tab = %d, want wrap to last", a.activeTab)
	}
}

func TestDataLoadedRecomputes(t *testing.T) {
	a := loadedApp(t)

	if !a.loaded {
		t.Fatal("app should be loaded after DataLoadedMsg")
	}
	if a.week.Spent != 120 {
		t.Errorf("week.Spent = %v, want 120", a.week.Spent)
	}
	if len(a.recent) != 1 {
		t.Errorf("recent = %d transactions, want 1", len(a.recent))
	}
}

func TestKeysIgnoredBeforeLoad(t *testing.T) {
	a := NewApp("unused.db")

	m, _ := a.Update(keyMsg('w'))
	if got := m.(App).activeTab; got != 0 {
		t.Errorf("key before load changed tab to %d", got)
	}
}
