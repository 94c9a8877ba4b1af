package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/phrazzld/taskpad/internal/domain"
	"github.com/spf13/cobra"
)

const listTimeLayout = "2006-01-02 15:04"

var addDescription string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent open tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := API.ListTasks(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching tasks: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks yet!")
			return nil
		}

		fmt.Fprintf(out, "  %-6s %-16s %s\n", "ID", "CREATED", "TITLE")
		fmt.Fprintf(out, "  %-6s %-16s %s\n", "--", "-------", "-----")
		for _, task := range tasks {
			printTaskRow(out, task)
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := API.CreateTask(cmd.Context(), args[0], addDescription)
		if err != nil {
			return fmt.Errorf("creating task: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created task %d: %s\n", task.ID, task.Title)
		return nil
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task ID %q", args[0])
		}

		task, err := API.CompleteTask(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("completing task: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Completed task %d: %s\n", task.ID, task.Title)
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the API server is up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := API.Health(cmd.Context())
		if err != nil {
			return fmt.Errorf("checking health: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", status.Status, status.Timestamp)
		return nil
	},
}

func printTaskRow(out io.Writer, task domain.Task) {
	fmt.Fprintf(out, "  %-6d %-16s %s\n", task.ID, task.CreatedAt.Local().Format(listTimeLayout), task.Title)
	if task.Description != "" {
		fmt.Fprintf(out, "  %-6s %-16s %s\n", "", "", task.Description)
	}
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "task description")
	rootCmd.AddCommand(listCmd, addCmd, completeCmd, healthCmd)
}
