package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hiagosil/sistemalevelup/internal/engine"
	"github.com/hiagosil/sistemalevelup/internal/storage"
	"github.com/hiagosil/sistemalevelup/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	hunter    *storage.Hunter
	daily     *storage.DailyProgress
	challenge *storage.Challenge
	room      *storage.HunterRoom

	now      time.Time
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	hunter    *storage.Hunter
	daily     *storage.DailyProgress
	challenge *storage.Challenge
	room      *storage.HunterRoom
	err       error
}

type completedMsg struct {
	res *engine.MissionResult
	err error
}

// tickMsg drives the streak clock. The tick mutates nothing; it only
// refreshes the derived elapsed duration.
type tickMsg time.Time

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		now:     svc.Clock().Now(),
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		hunter, err := m.svc.HunterRepo().Get(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		var daily *storage.DailyProgress
		if hunter != nil {
			daily, err = m.svc.LoadOrRollover(m.ctx)
			if err != nil {
				return loadedMsg{err: err}
			}
		}
		challenge, err := m.svc.Challenge(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		room, err := m.svc.Room(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{hunter: hunter, daily: daily, challenge: challenge, room: room}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteMission(m.ctx, id)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.hunter = msg.hunter
		m.daily = msg.daily
		m.challenge = msg.challenge
		m.room = msg.room
		if m.daily != nil && m.selected >= len(m.daily.Missions) {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.res.Changed {
			m.lastLog = "Mission already completed."
			return m, m.loadCmd()
		}
		log := fmt.Sprintf("%s +%d XP", msg.res.Mission.Title, msg.res.Award.XPAwarded)
		if msg.res.Award.LeveledUp {
			log += " • " + ui.BadgeLevelUp
		}
		if msg.res.DayCompleted {
			log += " • " + ui.Gold.Render("DAY COMPLETE")
		}
		m.lastLog = log
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.daily != nil && m.selected < len(m.daily.Missions)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.daily == nil || m.selected >= len(m.daily.Missions) {
				return m, nil
			}
			return m, m.completeCmd(m.daily.Missions[m.selected].ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.loading {
		return ui.Muted.Render("Loading…")
	}
	if m.err != nil {
		return ui.Bad.Render("Error: " + m.err.Error())
	}
	if m.hunter == nil {
		return ui.Panel.Render(ui.Muted.Render("No hunter registered.\nRun: sl register <name> -a <age> -w <weight>"))
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.hunterPanel(),
		m.streakPanel(),
	)
	right := m.missionsPanel()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	footer := ui.Muted.Render("↑/↓ select • enter complete • r refresh • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, ui.Dim.Render(m.lastLog), footer)
}

func (m boardModel) hunterPanel() string {
	h := m.hunter
	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconSword+" "+h.Name) + "\n")
	b.WriteString(fmt.Sprintf("Level %d  %s\n", h.Level, ui.XPBar(h.XP, h.XPToNextLevel, 14)))
	b.WriteString(fmt.Sprintf("%d/%d XP\n", h.XP, h.XPToNextLevel))
	rank := engine.Rank(h.Rank)
	b.WriteString("Rank " + ui.RankStyle(h.Rank).Render(h.Rank) + " " + ui.Muted.Render(rank.DisplayName()) + "\n")
	b.WriteString(fmt.Sprintf("STR %d  VIT %d  AGI %d\nINT %d  MANA %d\n",
		h.Stats.Strength, h.Stats.Vitality, h.Stats.Agility, h.Stats.Intelligence, h.Stats.Mana))
	b.WriteString(ui.Muted.Render(fmt.Sprintf("room xp %d", engine.RoomXP(m.room))))
	return ui.Panel.Render(b.String())
}

func (m boardModel) streakPanel() string {
	c := m.challenge
	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconShield+" Streak") + "\n")
	if c == nil || !c.Active {
		b.WriteString(ui.Muted.Render("inactive\n"))
	} else {
		d := engine.Elapsed(c, m.now)
		days := engine.ElapsedDays(c, m.now)
		tier := engine.TierForDays(days)
		hours := int(d/time.Hour) % 24
		minutes := int(d/time.Minute) % 60
		seconds := int(d/time.Second) % 60
		b.WriteString(fmt.Sprintf("%dd %02d:%02d:%02d\n", days, hours, minutes, seconds))
		b.WriteString(ui.Gold.Render(tier.Title) + "\n")
		if next, ok := engine.NextStreakTier(days); ok {
			b.WriteString(ui.Muted.Render(fmt.Sprintf("next: %s (%dd)", next.Title, next.Days)))
		}
	}
	if c != nil && (c.BestStreak > 0 || c.TotalResets > 0) {
		b.WriteString(ui.Muted.Render(fmt.Sprintf("\nbest %dd • resets %d", c.BestStreak, c.TotalResets)))
	}
	return ui.Panel.Render(b.String())
}

func (m boardModel) missionsPanel() string {
	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconTarget+" Missions — "+m.daily.Date) + "\n")
	for i, mission := range m.daily.Missions {
		check := "☐"
		if mission.Completed {
			check = "☑"
		}
		line := fmt.Sprintf("%s %s %s (+%d XP)", check, ui.MissionIcon(mission.Icon), mission.Title, mission.XPReward)
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		} else if mission.Completed {
			line = ui.Muted.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(ui.Muted.Render(fmt.Sprintf("xp today %d", m.daily.XPGained)))
	if m.daily.Completed {
		b.WriteString(" " + ui.Gold.Render(ui.IconTrophy))
	}
	return ui.Panel.Render(b.String())
}
