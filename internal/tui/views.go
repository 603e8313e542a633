// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-post-mirror/internal/state"
	"github.com/charmbracelet/lipgloss"
)

const titleWidth = 48

func (m model) View() string {
	var page string
	switch {
	case m.showAbout:
		page = m.aboutView()
	case m.screen == screenDetail:
		page = m.detailView()
	case m.screen == screenForm:
		page = m.form.View()
	case m.screen == screenConfirm:
		page = m.confirmView()
	default:
		page = m.listView()
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, page, m.statusLine()))
}

func (m model) listView() string {
	items := m.snapshot.Items
	if len(items) == 0 {
		data := "No posts yet."
		if m.snapshot.Status == state.Pending {
			data = "Loading posts..."
		}
		return renderPage("Posts", data, "n: new  r: refresh  v: about  q: quit")
	}

	start, end := m.window()
	var b strings.Builder
	for i, p := range items[start:end] {
		line := fmt.Sprintf("#%-5d %s", p.ID, fitText(firstLine(p.Title), titleWidth))
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%s", helpStyle.Render(fmt.Sprintf("page %d/%d  (%d posts)",
		m.page+1, pageCount(len(items), m.perPage), len(items))))

	return renderPage("Posts", b.String(),
		"↑/↓: move  ←/→: page  enter: open  n: new  e: edit  d: delete  r: refresh  x: dismiss  v: about  q: quit")
}

func (m model) detailView() string {
	post, ok := m.viewedPost()
	if !ok {
		data := "Post not loaded."
		if m.snapshot.Status == state.Pending {
			data = "Loading post..."
		}
		return renderPage(fmt.Sprintf("Post #%d", m.viewingID), data, "r: retry  esc: back")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(post.Title))
	b.WriteString("\n")
	if post.OwnerRef != nil {
		b.WriteString(helpStyle.Render(fmt.Sprintf("owner: %d", *post.OwnerRef)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderBody(post.Body))

	return renderPage(fmt.Sprintf("Post #%d", post.ID), b.String(),
		"e: edit  d: delete  c: copy body  r: reload  esc: back")
}

func (m model) confirmView() string {
	title := ""
	if p, ok := m.snapshot.Find(m.deleteID); ok {
		title = fmt.Sprintf(" %q", fitText(p.Title, titleWidth))
	}
	box := overlayBoxStyle.Render(fmt.Sprintf("Delete post #%d%s?", m.deleteID, title))
	return renderPage("Confirm", box, "y: delete  n/esc: cancel")
}

func (m model) aboutView() string {
	return renderPage("About", overlayBoxStyle.Render(m.about), "esc/v: close")
}

// statusLine shows the in-flight spinner, the failure or success message and
// any local notice.
func (m model) statusLine() string {
	var parts []string

	switch m.snapshot.Status {
	case state.Pending:
		parts = append(parts, m.spinner.View()+" working...")
	case state.Failed:
		parts = append(parts, errorStyle.Render("error: "+m.snapshot.Message))
	case state.Succeeded:
		if m.snapshot.Message != "" {
			parts = append(parts, successStyle.Render(m.snapshot.Message))
		}
	}

	if m.notice != "" {
		parts = append(parts, successStyle.Render(m.notice))
	}

	return strings.Join(parts, "  ")
}
