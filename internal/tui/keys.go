// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	enter     key.Binding
	back      key.Binding
	tab       key.Binding
	backtab   key.Binding
	submit    key.Binding
	quit      key.Binding
	forceQuit key.Binding
	newPost   key.Binding
	edit      key.Binding
	delete    key.Binding
	refresh   key.Binding
	copy      key.Binding
	dismiss   key.Binding
	about     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	prevPage:  key.NewBinding(key.WithKeys("left", "h", "pgup")),
	nextPage:  key.NewBinding(key.WithKeys("right", "l", "pgdown")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	back:      key.NewBinding(key.WithKeys("esc", "backspace")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	newPost:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	dismiss:   key.NewBinding(key.WithKeys("x")),
	about:     key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
