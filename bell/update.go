package bell

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/belfry-dev/belfry/internal/timeutil"
)

// ringCmd plays the chime for a fired bell off the update loop so a
// slow audio device never stalls the tick cadence.
func (m *Model) ringCmd(bell timeutil.BellTime, label string) tea.Cmd {
	return func() tea.Msg {
		m.ringer.Ring(bell, label)

		return chimeDoneMsg{}
	}
}

func (m *Model) testChimeCmd() tea.Cmd {
	return func() tea.Msg {
		m.ringer.Test()

		return chimeDoneMsg{}
	}
}

// handleTick advances the clock and evaluates the timetable. Playback is
// serialized through the ringing flag; a bell that fires while another
// chime is still sounding is recorded and reported but not played over
// it.
func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	m.now = time.Time(msg)

	if m.status != "" && time.Now().After(m.statusExpiry) {
		m.status = ""
	}

	if bell, fired := m.fireLog.ShouldFire(m.sched.Sorted(), m.now); fired {
		m.setStatus("チャイムを再生しました（" + bell.String() + "）")

		if !m.ringing {
			m.ringing = true

			return m, tea.Batch(tick(), m.ringCmd(bell, m.sched.Label))
		}
	}

	return m, tick()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.testChime):
		if m.ringing {
			return m, nil
		}

		m.ringing = true
		m.setStatus("チャイムをテスト再生しました")

		return m, m.testChimeCmd()

	case key.Matches(msg, defaultKeymap.copyLink):
		link := m.rec.Link(m.sched)

		if err := clipboard.WriteAll(link); err != nil {
			slog.Warn("clipboard write failed", slog.Any("error", err))
			m.setStatus("リンクをコピーできませんでした")

			return m, nil
		}

		m.setStatus("共有リンクをコピーしました")

		return m, nil

	case key.Matches(msg, defaultKeymap.toggleSeconds):
		m.showSeconds = !m.showSeconds

		m.rec.SetShowSeconds(m.showSeconds)
		m.rec.Push(m.sched)

		return m, nil

	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.debug {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(msg)

	case chimeDoneMsg:
		m.ringing = false

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	}

	return m, nil
}
