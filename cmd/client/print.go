// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-post-mirror/models"
	"github.com/fatih/color"
)

var (
	faint   = color.New(color.Faint).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
	success = color.New(color.FgGreen).SprintFunc()
)

func printPosts(w io.Writer, posts []models.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts found")
		return
	}

	for _, p := range posts {
		fmt.Fprintf(w, "%s %s\n", faint(fmt.Sprintf("#%-5d", p.ID)), p.Title)
	}
	fmt.Fprintln(w, faint(fmt.Sprintf("%d posts", len(posts))))
}

func printPost(w io.Writer, p models.Post) {
	fmt.Fprintf(w, "%s %s\n", faint(fmt.Sprintf("#%d", p.ID)), bold(p.Title))
	if p.OwnerRef != nil {
		fmt.Fprintln(w, faint(fmt.Sprintf("owner: %d", *p.OwnerRef)))
	}
	if p.Body != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.Body)
	}
}

func printMessage(w io.Writer, msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(w, success(msg))
}
