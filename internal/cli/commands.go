package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/todoapp/todo-client/client"
)

func newListCmd(s *settings) *cobra.Command {
	var group bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			start := time.Now()
			todos, err := c.ListTodos(cmd.Context())
			if err != nil {
				log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("list todos failed")
				return err
			}
			log.Debug().Int("count", len(todos)).Dur("elapsed", time.Since(start)).Msg("list todos completed")

			renderList(cmd.OutOrStdout(), todos, group)
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "Group output by pending/done")
	return cmd
}

func newAddCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a new todo (title can be multiple words)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Client-side validation removed; rely on server-side validation
			title := strings.Join(args, " ")

			c, err := s.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			start := time.Now()
			todo, err := c.CreateTodo(cmd.Context(), title)
			if err != nil {
				log.Error().Err(err).Str("title", title).Dur("elapsed", time.Since(start)).Msg("create todo failed")
				return err
			}
			log.Debug().Int("id", todo.ID).Dur("elapsed", time.Since(start)).Msg("create todo completed")

			renderOK(cmd.OutOrStdout(), fmt.Sprintf("added #%d %s", todo.ID, todo.Title))
			return nil
		},
	}
}

// newDoneCmd builds "done" (completed=true) or "undo" (completed=false).
func newDoneCmd(s *settings, completed bool) *cobra.Command {
	var title string
	use, short, verb := "done <id>", "Mark a todo as completed", "completed"
	if !completed {
		use, short, verb = "undo <id>", "Mark a todo as pending", "reopened"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := s.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			todo := client.Todo{ID: id, Title: title}
			if !cmd.Flags().Changed("title") {
				current, err := findTodo(cmd.Context(), c, id)
				if err != nil {
					return err
				}
				todo = *current
			}
			todo.Completed = completed

			updated, err := c.UpdateTodo(cmd.Context(), todo)
			if err != nil {
				log.Error().Err(err).Int("id", id).Msg("update todo failed")
				return err
			}
			renderOK(cmd.OutOrStdout(), fmt.Sprintf("%s #%d %s", verb, id, updated.Title))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Current title; skips the lookup request when set")
	return cmd
}

func newEditCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <title...>",
		Short: "Change the title of a todo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := s.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			current, err := findTodo(cmd.Context(), c, id)
			if err != nil {
				return err
			}
			current.Title = strings.Join(args[1:], " ")

			updated, err := c.UpdateTodo(cmd.Context(), *current)
			if err != nil {
				log.Error().Err(err).Int("id", id).Msg("update todo failed")
				return err
			}
			renderOK(cmd.OutOrStdout(), fmt.Sprintf("renamed #%d %s", id, updated.Title))
			return nil
		},
	}
}

func newRemoveCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove a todo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := s.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ack, err := c.DeleteTodo(cmd.Context(), id)
			if err != nil {
				log.Error().Err(err).Int("id", id).Msg("delete todo failed")
				return err
			}
			log.Debug().Int("id", id).RawJSON("ack", ackOrNull(ack)).Msg("delete todo completed")
			renderOK(cmd.OutOrStdout(), fmt.Sprintf("removed #%d", id))
			return nil
		},
	}
}

// findTodo reads the owner's list to recover the fields an update must resend.
func findTodo(ctx context.Context, c *client.Client, id int) (*client.Todo, error) {
	todos, err := c.ListTodos(ctx)
	if err != nil {
		return nil, err
	}
	for i := range todos {
		if todos[i].ID == id {
			return &todos[i], nil
		}
	}
	return nil, fmt.Errorf("todo #%d not found; run `todo ls` to see valid ids", id)
}

func ackOrNull(ack []byte) []byte {
	if len(ack) == 0 {
		return []byte("null")
	}
	return ack
}
