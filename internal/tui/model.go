// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-post-mirror/internal/service"
	"github.com/MKhiriev/go-post-mirror/internal/state"
	"github.com/MKhiriev/go-post-mirror/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenConfirm
)

const noticeTTL = 2 * time.Second

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// model renders store snapshots and turns key presses into coordinator calls.
// Coordinator calls return immediately, so they are made straight from Update;
// results come back as stateChangedMsg. The model never mutates the snapshot
// it holds.
type model struct {
	ctx         context.Context
	coordinator service.PostsCoordinator
	perPage     int
	about       string

	snapshot state.State

	screen     screen
	prevScreen screen
	page       int
	cursor     int // index within the current page
	viewingID  int64
	deleteID   int64
	form       formModel
	spinner    spinner.Model
	notice     string
	showAbout  bool
}

func newModel(ctx context.Context, coordinator service.PostsCoordinator, initial state.State, perPage int, about string) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:         ctx,
		coordinator: coordinator,
		perPage:     perPage,
		about:       about,
		snapshot:    initial,
		spinner:     s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdFetchAll())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		// subscribers deliver asynchronously; older snapshots may arrive late
		if msg.state.Revision < m.snapshot.Revision {
			return m, nil
		}
		m.snapshot = msg.state
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.notice = "copy failed: " + msg.err.Error()
		} else {
			m.notice = "Copied to clipboard"
		}
		return m, clearNoticeAfter(noticeTTL)

	case clearNoticeMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	if m.screen == screenForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showAbout {
		if key.Matches(msg, keys.back) || key.Matches(msg, keys.about) {
			m.showAbout = false
		}
		return m, nil
	}

	switch m.screen {
	case screenDetail:
		return m.handleDetailKey(msg)
	case screenForm:
		return m.handleFormKey(msg)
	case screenConfirm:
		return m.handleConfirmKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		start, end := m.window()
		if m.cursor < end-start-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.prevPage):
		m.page = clampPage(m.page-1, len(m.snapshot.Items), m.perPage)
		m.cursor = 0
	case key.Matches(msg, keys.nextPage):
		m.page = clampPage(m.page+1, len(m.snapshot.Items), m.perPage)
		m.cursor = 0
	case key.Matches(msg, keys.refresh):
		m.coordinator.FetchAll(m.ctx)
	case key.Matches(msg, keys.dismiss):
		m.coordinator.DismissMessage()
	case key.Matches(msg, keys.about):
		m.showAbout = true
	case key.Matches(msg, keys.newPost):
		m.openForm(nil)
		return m, nil
	}

	post, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		m.screen = screenDetail
		m.viewingID = post.ID
		m.coordinator.FetchOne(m.ctx, post.ID)
	case key.Matches(msg, keys.edit):
		m.openForm(&post)
	case key.Matches(msg, keys.delete):
		m.openConfirm(post.ID)
	}

	return m, nil
}

func (m model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	post, viewing := m.viewedPost()

	switch {
	case key.Matches(msg, keys.back):
		m.screen = screenList
		m.viewingID = 0
		m.coordinator.NavigateAway()
		return m, nil
	case key.Matches(msg, keys.edit) && viewing:
		m.openForm(&post)
	case key.Matches(msg, keys.delete) && viewing:
		m.openConfirm(post.ID)
	case key.Matches(msg, keys.copy) && viewing:
		return m, cmdCopy(post.Body)
	case key.Matches(msg, keys.refresh):
		m.coordinator.FetchOne(m.ctx, m.viewingID)
	}

	return m, nil
}

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.screen = m.prevScreen
		return m, nil
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		var cmd tea.Cmd
		m.form, cmd = m.form.toggleFocus()
		return m, cmd
	case key.Matches(msg, keys.submit):
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	m.form.err = nil
	return m, cmd
}

func (m model) submitForm() (tea.Model, tea.Cmd) {
	var err error
	if m.form, err = m.form.validate(); err != nil {
		return m, nil
	}

	if m.form.editing() {
		id := m.form.editID
		m.screen = screenDetail
		m.viewingID = id
		m.coordinator.Update(m.ctx, id, m.form.patch())
		return m, nil
	}

	m.screen = screenList
	m.page = 0
	m.cursor = 0
	m.coordinator.Create(m.ctx, m.form.draft())
	return m, nil
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		id := m.deleteID
		m.deleteID = 0
		if m.prevScreen == screenDetail {
			// before Delete, so its Pending status is not reset to Idle
			m.coordinator.NavigateAway()
		}
		m.screen = screenList
		m.viewingID = 0
		m.coordinator.Delete(m.ctx, id)
		return m, nil
	case key.Matches(msg, keys.no):
		m.deleteID = 0
		m.screen = m.prevScreen
	}
	return m, nil
}

func (m *model) openForm(post *models.Post) {
	m.prevScreen = m.screen
	m.form = newFormModel(post)
	m.screen = screenForm
}

func (m *model) openConfirm(id int64) {
	m.prevScreen = m.screen
	m.deleteID = id
	m.screen = screenConfirm
}

// window returns the index range of the visible page.
func (m model) window() (int, int) {
	return pageWindow(len(m.snapshot.Items), m.page, m.perPage)
}

func (m *model) clampCursor() {
	m.page = clampPage(m.page, len(m.snapshot.Items), m.perPage)
	start, end := m.window()
	if m.cursor > end-start-1 {
		m.cursor = end - start - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// current returns the post under the cursor.
func (m model) current() (models.Post, bool) {
	start, end := m.window()
	idx := start + m.cursor
	if idx < start || idx >= end {
		return models.Post{}, false
	}
	return m.snapshot.Items[idx], true
}

// viewedPost returns the selection only when it is the post the detail
// screen is showing; results for other identities are ignored.
func (m model) viewedPost() (models.Post, bool) {
	sel := m.snapshot.Selected
	if sel == nil || sel.ID != m.viewingID {
		return models.Post{}, false
	}
	return *sel, true
}

func (m model) cmdFetchAll() tea.Cmd {
	return func() tea.Msg {
		m.coordinator.FetchAll(m.ctx)
		return nil
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func clearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{} })
}
