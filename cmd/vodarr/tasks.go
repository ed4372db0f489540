package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage backlog download tasks",
	Long: `Manage backlog tasks. A task walks a channel or playlist from the
oldest video to the newest and downloads everything not yet in the library.

Examples:
  vodarr tasks                                      # List tasks
  vodarr tasks -s active                            # Only active tasks
  vodarr tasks add https://youtube.com/@somechannel # Start a full-channel backlog
  vodarr tasks pause <id>                           # Pause after the current video
  vodarr tasks cancel <id> --reason "wrong channel"`,
	RunE: runTasksListCmd,
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backlog tasks",
	RunE:  runTasksListCmd,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Start a backlog task for a channel or playlist URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksAddCmd,
}

var tasksGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one task in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksGetCmd,
}

var tasksPauseCmd = &cobra.Command{
	Use:   "pause <id>",
	Short: "Pause a task after the in-flight video finishes",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksPauseCmd,
}

var tasksResumeCmd = &cobra.Command{
	Use:   "resume <id>",
	Short: "Resume a paused task from where it stopped",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksResumeCmd,
}

var tasksCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a task permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksCancelCmd,
}

var tasksEventsCmd = &cobra.Command{
	Use:   "events <id>",
	Short: "Show the event trail for a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksEventsCmd,
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	tasksCmd.AddCommand(tasksListCmd, tasksAddCmd, tasksGetCmd,
		tasksPauseCmd, tasksResumeCmd, tasksCancelCmd, tasksEventsCmd)

	tasksCmd.PersistentFlags().StringP("status", "s", "", "Filter by status (active, paused, completed, cancelled)")
	tasksCmd.PersistentFlags().String("subscription", "", "Filter by subscription ID")
	tasksCmd.PersistentFlags().IntP("limit", "n", 50, "Maximum tasks to list")
	tasksCmd.PersistentFlags().Int("offset", 0, "Pagination offset")

	tasksAddCmd.Flags().StringP("collection", "c", "", "Collection ID to file downloads into")
	tasksCancelCmd.Flags().StringP("reason", "r", "", "Reason recorded on the task")
}

func runTasksListCmd(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")
	subscriptionID, _ := cmd.Flags().GetString("subscription")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	client := NewClient(serverURL)
	tasks, err := client.Tasks(status, subscriptionID, limit, offset)
	if err != nil {
		return fmt.Errorf("list tasks failed: %w", err)
	}

	if jsonOutput {
		printJSON(tasks)
		return nil
	}

	if len(tasks.Items) == 0 {
		fmt.Println("No tasks")
		return nil
	}

	fmt.Printf("Tasks (%d):\n\n", tasks.Total)
	fmt.Printf("  %-36s %-22s %-10s %-16s %s\n", "ID", "AUTHOR", "STATUS", "PROGRESS", "UPDATED")
	fmt.Println("  " + strings.Repeat("-", 96))

	for _, task := range tasks.Items {
		fmt.Printf("  %-36s %-22s %-10s %-16s %s\n",
			task.ID, truncate(task.Author, 22), task.Status,
			formatTaskProgress(&task), formatRFC3339Ago(task.UpdatedAt))
	}
	return nil
}

func runTasksAddCmd(cmd *cobra.Command, args []string) error {
	collection, _ := cmd.Flags().GetString("collection")

	req := CreateTaskRequest{URL: args[0]}
	if collection != "" {
		req.CollectionID = &collection
	}

	client := NewClient(serverURL)
	task, err := client.CreateTask(req)
	if err != nil {
		return fmt.Errorf("create task failed: %w", err)
	}

	if jsonOutput {
		printJSON(task)
		return nil
	}

	fmt.Printf("Backlog task started for %s\n", task.AuthorURL)
	fmt.Printf("  ID: %s\n", task.ID)
	return nil
}

func runTasksGetCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	task, err := client.Task(args[0])
	if err != nil {
		return fmt.Errorf("get task failed: %w", err)
	}

	if jsonOutput {
		printJSON(task)
		return nil
	}

	printTask(task)
	return nil
}

func runTasksPauseCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	task, err := client.PauseTask(args[0])
	if err != nil {
		return fmt.Errorf("pause task failed: %w", err)
	}

	if jsonOutput {
		printJSON(task)
		return nil
	}
	fmt.Printf("Pausing %s (takes effect after the current video)\n", task.Author)
	return nil
}

func runTasksResumeCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	task, err := client.ResumeTask(args[0])
	if err != nil {
		return fmt.Errorf("resume task failed: %w", err)
	}

	if jsonOutput {
		printJSON(task)
		return nil
	}
	fmt.Printf("Resumed %s at video %d/%d\n", task.Author, task.CurrentVideoIndex, task.TotalVideos)
	return nil
}

func runTasksCancelCmd(cmd *cobra.Command, args []string) error {
	reason, _ := cmd.Flags().GetString("reason")

	client := NewClient(serverURL)
	task, err := client.CancelTask(args[0], reason)
	if err != nil {
		return fmt.Errorf("cancel task failed: %w", err)
	}

	if jsonOutput {
		printJSON(task)
		return nil
	}
	fmt.Printf("Cancelled %s (%d downloaded, %d failed)\n", task.Author, task.DownloadedCount, task.FailedCount)
	return nil
}

func runTasksEventsCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	events, err := client.TaskEvents(args[0])
	if err != nil {
		return fmt.Errorf("task events failed: %w", err)
	}

	if jsonOutput {
		printJSON(events)
		return nil
	}

	printEventTable(events)
	return nil
}

func printTask(t *TaskResponse) {
	fmt.Printf("Task %s\n\n", t.ID)
	fmt.Printf("  Author:     %s\n", t.Author)
	fmt.Printf("  URL:        %s\n", t.AuthorURL)
	fmt.Printf("  Platform:   %s\n", t.Platform)
	fmt.Printf("  Status:     %s\n", t.Status)
	fmt.Printf("  Progress:   %s\n", formatTaskProgress(t))
	fmt.Printf("  Downloaded: %d\n", t.DownloadedCount)
	fmt.Printf("  Skipped:    %d\n", t.SkippedCount)
	fmt.Printf("  Failed:     %d\n", t.FailedCount)
	if t.SubscriptionID != nil {
		fmt.Printf("  Subscription: %s\n", *t.SubscriptionID)
	}
	if t.CollectionID != nil {
		fmt.Printf("  Collection: %s\n", *t.CollectionID)
	}
	if t.Error != "" {
		fmt.Printf("  Error:      %s\n", t.Error)
	}
	fmt.Printf("  Created:    %s\n", formatRFC3339Ago(t.CreatedAt))
	fmt.Printf("  Updated:    %s\n", formatRFC3339Ago(t.UpdatedAt))
	if t.CompletedAt != nil {
		fmt.Printf("  Completed:  %s\n", formatRFC3339Ago(*t.CompletedAt))
	}
}

// formatTaskProgress renders position against total, with total unknown
// until discovery has run.
func formatTaskProgress(t *TaskResponse) string {
	if t.TotalVideos == 0 {
		return "discovering"
	}
	return fmt.Sprintf("%d/%d", t.CurrentVideoIndex, t.TotalVideos)
}
