// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/livefire-site/database/repositories"
	"github.com/spf13/cobra"
)

func NewCommentsCommand() *cobra.Command {
	comments := cobra.Command{
		Use:   "comments",
		Short: "Moderate visitor comments",
	}

	comments.AddCommand(newCommentsPendingCommand())
	comments.AddCommand(newCommentsApproveCommand())
	return &comments
}

func newCommentsPendingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List comments awaiting moderation",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			db, err := cliDatabase()
			if err != nil {
				return
			}

			commentRepository := repositories.NewCommentRepository(db)
			pending, err := commentRepository.ListPending()
			if err != nil {
				slog.Error("could not list pending comments", "err", err)
				return
			}

			if len(pending) == 0 {
				fmt.Println("no comments awaiting moderation")
				return
			}

			tw := table.NewWriter()
			tw.SetAllowedRowLength(130)
			for _, comment := range pending {
				tw.AppendRows([]table.Row{
					{"ID:", comment.ID},
					{"Post:", comment.PostSlug},
					{"Author:", fmt.Sprintf("%s <%s>", comment.Name, comment.Email)},
					{"Submitted:", comment.CreatedAt.Format(time.RFC822)},
					{"Message:", text.WrapText(comment.Message, 80)},
				})
				tw.AppendSeparator()
			}
			fmt.Println(tw.Render())
		},
	}
}

func newCommentsApproveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a comment so it shows up on the site",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := uuid.Parse(args[0])
			if err != nil {
				slog.Error("invalid comment id", "id", args[0])
				return
			}

			db, err := cliDatabase()
			if err != nil {
				return
			}

			commentRepository := repositories.NewCommentRepository(db)
			if err := commentRepository.Approve(id); err != nil {
				slog.Error("could not approve comment", "id", id, "err", err)
				return
			}
			slog.Info("comment approved", "id", id)
		},
	}
}
