// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-post-mirror/models"
	"github.com/spf13/cobra"
)

var errEmptyTitle = errors.New("--title must not be empty")

const (
	flagTitle = "title"
	flagBody  = "body"
	flagUser  = "user"
)

func newListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all posts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			posts, err := rt.services.PostsCoordinator.FetchAll(cmd.Context()).Wait(cmd.Context())
			if err != nil {
				return fmt.Errorf("list posts: %w", err)
			}

			printPosts(cmd.OutOrStdout(), posts)
			return nil
		},
	}
}

func newGetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			post, err := rt.services.PostsCoordinator.FetchOne(cmd.Context(), id).Wait(cmd.Context())
			if err != nil {
				return fmt.Errorf("get post %d: %w", id, err)
			}

			printPost(cmd.OutOrStdout(), post)
			return nil
		},
	}
}

func newCreateCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, err := requiredTitle(cmd)
			if err != nil {
				return err
			}
			body, _ := cmd.Flags().GetString(flagBody)

			draft := models.PostDraft{Title: title, Body: body}
			if cmd.Flags().Changed(flagUser) {
				user, _ := cmd.Flags().GetInt64(flagUser)
				draft.OwnerRef = models.OwnerRefOf(user)
			}

			post, err := rt.services.PostsCoordinator.Create(cmd.Context(), draft).Wait(cmd.Context())
			if err != nil {
				return fmt.Errorf("create post: %w", err)
			}

			printMessage(cmd.OutOrStdout(), rt.services.Store.Snapshot().Message)
			printPost(cmd.OutOrStdout(), post)
			return nil
		},
	}

	cmd.Flags().String(flagTitle, "", "post title")
	cmd.Flags().String(flagBody, "", "post body")
	cmd.Flags().Int64(flagUser, 0, "owner of the post (default: --owner)")
	_ = cmd.MarkFlagRequired(flagTitle)

	return cmd
}

func newUpdateCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace title and body of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			title, err := requiredTitle(cmd)
			if err != nil {
				return err
			}

			// PUT replaces the whole record; keep the current body unless
			// a new one is given.
			body, _ := cmd.Flags().GetString(flagBody)
			if !cmd.Flags().Changed(flagBody) {
				current, err := rt.services.PostsCoordinator.FetchOne(cmd.Context(), id).Wait(cmd.Context())
				if err != nil {
					return fmt.Errorf("get post %d: %w", id, err)
				}
				body = current.Body
			}

			post, err := rt.services.PostsCoordinator.Update(cmd.Context(), id, models.PostPatch{Title: title, Body: body}).Wait(cmd.Context())
			if err != nil {
				return fmt.Errorf("update post %d: %w", id, err)
			}

			printMessage(cmd.OutOrStdout(), rt.services.Store.Snapshot().Message)
			printPost(cmd.OutOrStdout(), post)
			return nil
		},
	}

	cmd.Flags().String(flagTitle, "", "new post title")
	cmd.Flags().String(flagBody, "", "new post body (default: keep the current body)")
	_ = cmd.MarkFlagRequired(flagTitle)

	return cmd
}

func newDeleteCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a post",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if _, err = rt.services.PostsCoordinator.Delete(cmd.Context(), id).Wait(cmd.Context()); err != nil {
				return fmt.Errorf("delete post %d: %w", id, err)
			}

			printMessage(cmd.OutOrStdout(), rt.services.Store.Snapshot().Message)
			return nil
		},
	}
}

func requiredTitle(cmd *cobra.Command) (string, error) {
	title, _ := cmd.Flags().GetString(flagTitle)
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errEmptyTitle
	}
	return title, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid post id %q", raw)
	}
	return id, nil
}
