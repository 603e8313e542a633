// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-post-mirror/internal/validators"
	"github.com/MKhiriev/go-post-mirror/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	errTitleRequired = errors.New("title is required")
	errBodyRequired  = errors.New("body is required")
)

type formField int

const (
	fieldTitle formField = iota
	fieldBody
)

// formModel edits title and body of a new or existing post.
type formModel struct {
	editID int64 // zero for a new post
	title  textinput.Model
	body   textarea.Model
	focus  formField
	err    error
}

func newFormModel(post *models.Post) formModel {
	ti := textinput.New()
	ti.Placeholder = "Enter post title..."
	ti.CharLimit = validators.MaxTitleLength
	ti.Width = 60

	ta := textarea.New()
	ta.Placeholder = "Write your post content..."
	ta.CharLimit = validators.MaxBodyLength
	ta.SetWidth(60)
	ta.SetHeight(8)
	ta.ShowLineNumbers = false

	f := formModel{title: ti, body: ta}
	if post != nil {
		f.editID = post.ID
		f.title.SetValue(post.Title)
		f.body.SetValue(post.Body)
	}
	f.title.Focus()

	return f
}

func (f formModel) editing() bool {
	return f.editID != 0
}

// validate reports the first empty field and moves focus to it.
func (f formModel) validate() (formModel, error) {
	switch {
	case strings.TrimSpace(f.title.Value()) == "":
		f.err = errTitleRequired
		if f.focus != fieldTitle {
			f, _ = f.toggleFocus()
		}
	case strings.TrimSpace(f.body.Value()) == "":
		f.err = errBodyRequired
		if f.focus != fieldBody {
			f, _ = f.toggleFocus()
		}
	default:
		f.err = nil
	}
	return f, f.err
}

func (f formModel) draft() models.PostDraft {
	return models.PostDraft{Title: strings.TrimSpace(f.title.Value()), Body: f.body.Value()}
}

func (f formModel) patch() models.PostPatch {
	return models.PostPatch{Title: strings.TrimSpace(f.title.Value()), Body: f.body.Value()}
}

// toggleFocus moves the cursor between the two fields.
func (f formModel) toggleFocus() (formModel, tea.Cmd) {
	if f.focus == fieldTitle {
		f.focus = fieldBody
		f.title.Blur()
		return f, f.body.Focus()
	}

	f.focus = fieldTitle
	f.body.Blur()
	return f, f.title.Focus()
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == fieldTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.body, cmd = f.body.Update(msg)
	}
	return f, cmd
}

func (f formModel) View() string {
	header := "Create Post"
	if f.editing() {
		header = "Edit Post"
	}

	var b strings.Builder
	b.WriteString("Title\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\nBody\n")
	b.WriteString(f.body.View())
	if f.err != nil {
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render(errorStyle.Render("Error: " + f.err.Error())))
	}

	return renderPage(header, b.String(), "tab: switch field  ctrl+s: save  esc: cancel")
}
