package playground

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jusunglee/josa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeWord(t *testing.T, m tea.Model, word string) tea.Model {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(word)})
	return m
}

func TestNewStartsOnInitialJosa(t *testing.T) {
	m := New(josa.EulReul, josa.PolicyNoCoda, false).(model)
	assert.Equal(t, josa.EulReul, m.josas[m.cursor])
	assert.Equal(t, josa.PolicyNoCoda, policies[m.policy])
}

func TestCursorWraps(t *testing.T) {
	var m tea.Model = New(josa.EunNeun, josa.PolicyTable, false)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, josa.IDa, m.(model).josas[m.(model).cursor])

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, josa.EunNeun, m.(model).josas[m.(model).cursor])
}

func TestViewShowsEveryJosa(t *testing.T) {
	m := typeWord(t, New(josa.EunNeun, josa.PolicyTable, false), "유진")
	view := m.View()
	for _, want := range []string{"유진은", "유진이", "유진을", "유진과", "유진아", "유진으로", "유진이랑", "유진이나", "유진이다"} {
		assert.Contains(t, view, want)
	}
}

func TestEnterChoosesAndQuits(t *testing.T) {
	m := typeWord(t, New(josa.IGa, josa.PolicyTable, false), "고등어")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "고등어가", m.(model).chosen)
}

func TestEnterIgnoredOnFailure(t *testing.T) {
	m := typeWord(t, New(josa.IGa, josa.PolicyTable, false), "table")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, m.(model).chosen)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, josa.PolicyNoCoda, policies[m.(model).policy])
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "table가", m.(model).chosen)
}

func TestNormalize(t *testing.T) {
	m := typeWord(t, New(josa.EunNeun, josa.PolicyStrict, true), "\u1100\u1161\u11ab")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "간은", m.(model).chosen)
}
