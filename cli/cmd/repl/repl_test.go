package repl

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/typecfg/config"
	"github.com/ardnew/typecfg/log"
)

const sample = `
int      port   = 8080;
string   qwerty = "keys";
bool     debug  = true;
double[] lims   = [0.5, inf];
`

func parser(t *testing.T) *config.Parser {
	t.Helper()

	return config.NewFromString(context.Background(), "repl", sample)
}

func testModel(t *testing.T) model {
	t.Helper()

	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	return newModel(context.Background(), parser(t), h, log.Logger{})
}

func send(m model, msgs ...tea.Msg) (model, tea.Cmd) {
	var cmd tea.Cmd

	for _, msg := range msgs {
		var next tea.Model

		next, cmd = m.Update(msg)
		m = next.(model)
	}

	return m, cmd
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func fuzzyMatch(s string) fuzzy.Match {
	return fuzzy.Match{Str: s}
}

func TestRun_NilParser(t *testing.T) {
	err := Run(context.Background(), nil, t.TempDir(), log.Logger{})
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("Run(nil) error = %v, want ErrNoSource", err)
	}
}

func TestModel_Evaluate(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		input string
		want  []string
	}{
		{"port", []string{"port", "<int>", "8080"}},
		{"qwerty", []string{"qwerty", "<string>", `"keys"`}},
		{"lims", []string{"lims", "<double[]>", "[0.5, inf]"}},
		{"port + 1", []string{"8081"}},
		{"debug && port > 80", []string{"true"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := m.evaluate(tt.input)
			if err != nil {
				t.Fatal(err)
			}

			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("evaluate(%q) = %q, want it to contain %q", tt.input, got, want)
				}
			}
		})
	}

	if _, err := m.evaluate("undeclared"); !errors.Is(err, config.ErrEval) {
		t.Errorf("evaluate(undeclared) error = %v, want config.ErrEval", err)
	}
}

func TestModel_TabCompletesSingleCandidate(t *testing.T) {
	m, _ := send(testModel(t), keys("qwe"))

	if len(m.matches) != 1 || m.matches[0].Str != "qwerty" {
		t.Fatalf("matches = %v, want [qwerty]", m.matches)
	}

	m, _ = send(m, key(tea.KeyTab))

	if got := m.input.Value(); got != "qwerty" {
		t.Errorf("input = %q, want %q", got, "qwerty")
	}

	if m.tabActive {
		t.Error("single candidate must not start tab-cycling")
	}
}

func TestModel_TabCycling(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("x")
	m.input.SetCursor(1)
	m.matches = nil

	// Seed two candidates directly so the cycle order is known.
	m.wordStart, m.wordEnd = 0, 1
	m.matches = append(m.matches,
		fuzzyMatch("alpha"), fuzzyMatch("beta"))

	m, _ = m.cycle(1)
	if got := m.input.Value(); got != "alpha" || !m.tabActive {
		t.Fatalf("first Tab: input = %q, tabActive = %v", got, m.tabActive)
	}

	m, _ = m.cycle(1)
	if got := m.input.Value(); got != "beta" {
		t.Errorf("second Tab: input = %q, want beta", got)
	}

	m, _ = m.cycle(1)
	if got := m.input.Value(); got != "alpha" {
		t.Errorf("wrapped Tab: input = %q, want alpha", got)
	}

	m, _ = m.cycle(-1)
	if got := m.input.Value(); got != "beta" {
		t.Errorf("Shift-Tab: input = %q, want beta", got)
	}

	m, _ = send(m, key(tea.KeyEsc))
	if got := m.input.Value(); got != "x" || m.tabActive {
		t.Errorf("Esc: input = %q, tabActive = %v; want restored input", got, m.tabActive)
	}
}

func TestModel_EnterRecordsHistory(t *testing.T) {
	m, cmd := send(testModel(t), keys("port"), key(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("Enter must produce output")
	}

	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}

	e, err := m.history.GetEntry(0)
	if err != nil || e != (HistoryEntry{"port", modeEval}) {
		t.Errorf("history[0] = %v, %v", e, err)
	}
}

func TestModel_CommandPrefix(t *testing.T) {
	m, cmd := send(testModel(t), keys(":list"), key(tea.KeyEnter))

	if cmd == nil {
		t.Fatal(":list must produce output")
	}

	e, err := m.history.GetEntry(0)
	if err != nil || e != (HistoryEntry{"list", modeCtrl}) {
		t.Errorf("history[0] = %v, %v; want ctrl entry", e, err)
	}

	if m.mode != modeEval {
		t.Error("a prefixed command must not change mode")
	}

	m, _ = send(m, keys(":quit"), key(tea.KeyEnter))
	if !m.quitting {
		t.Error(":quit did not quit")
	}
}

func TestModel_ModeToggle(t *testing.T) {
	m, _ := send(testModel(t), keys("port"), key(tea.KeyEsc))

	if m.mode != modeCtrl || m.input.Value() != "" {
		t.Fatalf("after Esc: mode = %v, input = %q", m.mode, m.input.Value())
	}

	m, _ = send(m, keys("li"))
	if len(m.matches) == 0 || m.matches[0].Str != "list" {
		t.Errorf("ctrl matches = %v, want list first", m.matches)
	}

	m, _ = send(m, key(tea.KeyEsc))
	if m.mode != modeEval || m.input.Value() != "port" {
		t.Errorf("after second Esc: mode = %v, input = %q", m.mode, m.input.Value())
	}
}

func TestModel_History(t *testing.T) {
	m, _ := send(testModel(t),
		keys("port"), key(tea.KeyEnter),
		keys(":help"), key(tea.KeyEnter),
		keys("debug"), key(tea.KeyEnter),
	)

	m, _ = send(m, key(tea.KeyUp))
	if got := m.input.Value(); got != "debug" {
		t.Errorf("Up: input = %q, want debug", got)
	}

	m, _ = send(m, key(tea.KeyUp))
	if got := m.input.Value(); got != "help" || m.mode != modeCtrl {
		t.Errorf("Up: input = %q mode = %v, want help in ctrl mode", got, m.mode)
	}

	m, _ = send(m, key(tea.KeyShiftUp))
	if m.mode != modeCtrl || m.historyIdx != 1 {
		t.Errorf("ShiftUp past the only ctrl entry moved to %d", m.historyIdx)
	}

	m, _ = send(m, key(tea.KeyDown), key(tea.KeyDown))
	if got := m.input.Value(); got != "" || m.historyIdx != m.history.Len() {
		t.Errorf("Down past end: input = %q idx = %d", got, m.historyIdx)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := send(testModel(t), key(tea.KeyCtrlC))
	if !m.quitting {
		t.Error("Ctrl+C on empty input must quit")
	}

	m, _ = send(testModel(t), keys("po"), key(tea.KeyCtrlC))
	if m.quitting || m.input.Value() != "" {
		t.Errorf("Ctrl+C with input: quitting = %v, input = %q", m.quitting, m.input.Value())
	}

	if m.View() == "" {
		t.Error("View must render while running")
	}
}

func TestModel_Listings(t *testing.T) {
	m := testModel(t)

	list := m.listVariables()
	for _, want := range []string{"port", "<int>", "qwerty", "<double[]>", "[0.5, inf]"} {
		if !strings.Contains(list, want) {
			t.Errorf("listVariables missing %q:\n%s", want, list)
		}
	}

	if got := m.listErrors(); !strings.Contains(got, "no errors") {
		t.Errorf("listErrors = %q", got)
	}

	m.parser.GetIntValue("missing")

	if got := m.listErrors(); !strings.Contains(got, "didn't find variable missing of type int") {
		t.Errorf("listErrors = %q", got)
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("x", 50)

	if got := preview(long); len(got) != 40 || !strings.HasSuffix(got, "...") {
		t.Errorf("preview(long) = %q", got)
	}

	if got := preview("short"); got != "short" {
		t.Errorf("preview(short) = %q", got)
	}
}
