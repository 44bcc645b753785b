// Package bell renders the fullscreen clock and drives the chime tick
// loop.
package bell

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/belfry-dev/belfry/internal/config"
	"github.com/belfry-dev/belfry/reconcile"
	"github.com/belfry-dev/belfry/schedule"
	"github.com/belfry-dev/belfry/trigger"
)

// statusTimeout matches how long the status toast stays visible.
const statusTimeout = 4 * time.Second

type tickMsg time.Time

// chimeDoneMsg signals that a chime playback goroutine has finished.
type chimeDoneMsg struct{}

// Model is the bubbletea model for the clock display.
type Model struct {
	cfg          *config.Config
	sched        *schedule.Schedule
	rec          *reconcile.Reconciler
	ringer       *trigger.Ringer
	fireLog      *trigger.FireLog
	now          time.Time
	showSeconds  bool
	status       string
	statusExpiry time.Time
	ringing      bool
	help         help.Model
	width        int
	height       int
	debug        bool
}

// New assembles the clock model. The fire log is owned by this session;
// nothing outside the tick loop touches it.
func New(
	cfg *config.Config,
	sched *schedule.Schedule,
	rec *reconcile.Reconciler,
	ringer *trigger.Ringer,
) *Model {
	return &Model{
		cfg:         cfg,
		sched:       sched,
		rec:         rec,
		ringer:      ringer,
		fireLog:     trigger.NewFireLog(),
		now:         time.Now(),
		showSeconds: rec.ShowSeconds(cfg.Display.ShowSeconds),
		help:        help.New(),
		debug:       os.Getenv("BELFRY_DEBUG") != "",
	}
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// setStatus shows a transient toast message.
func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusExpiry = time.Now().Add(statusTimeout)
}

// Run starts the fullscreen clock and blocks until it exits.
func Run(
	cfg *config.Config,
	sched *schedule.Schedule,
	rec *reconcile.Reconciler,
	ringer *trigger.Ringer,
) error {
	m := New(cfg, sched, rec, ringer)

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()

	return err
}

var _ tea.Model = (*Model)(nil)
