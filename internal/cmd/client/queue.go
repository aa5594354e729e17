// Package client contains Cobra CLI commands for siphon.
package client

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewQueueCommand constructs the `queue` command group and subcommands.
func NewQueueCommand(baseURL BaseURLFunc) *cobra.Command {
	queueCmd := &cobra.Command{Use: "queue", Short: "Queue operations"}

	queueCmd.AddCommand(
		newQueueCreateCommand(baseURL),
		newQueueEnqueueCommand(baseURL),
		newQueueDequeueCommand(baseURL),
		newQueueListCommand(baseURL),
	)

	return queueCmd
}

// newQueueCreateCommand constructs the `queue create` subcommand.
func newQueueCreateCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := postJSON(cmd.Context(), baseURL()+"/v1/queues/create",
				map[string]string{"name": args[0]})
			if err != nil {
				return err
			}
			return printResult(cmd, status, body)
		},
	}
}

// newQueueEnqueueCommand constructs the `queue enqueue` subcommand.
func newQueueEnqueueCommand(baseURL BaseURLFunc) *cobra.Command {
	enqueueCmd := &cobra.Command{
		Use:   "enqueue <queue>",
		Short: "Enqueue a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _ := cmd.Flags().GetString("key")
			pairs, _ := cmd.Flags().GetStringArray("field")
			fields, err := parseFields(pairs)
			if err != nil {
				return err
			}
			if key == "" {
				key = uuid.NewString()
			}
			status, body, err := postJSON(cmd.Context(), baseURL()+"/v1/queues/enqueue", map[string]any{
				"queue":  args[0],
				"key":    key,
				"fields": fields,
			})
			if err != nil {
				return err
			}
			return printResult(cmd, status, body)
		},
	}
	enqueueCmd.Flags().String("key", "", "Job key (generated when omitted)")
	enqueueCmd.Flags().StringArray("field", nil, "Job field as key=value (repeatable)")
	return enqueueCmd
}

// newQueueDequeueCommand constructs the `queue dequeue` subcommand.
func newQueueDequeueCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "dequeue <queue>",
		Short: "Pop the oldest pending job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := postJSON(cmd.Context(), baseURL()+"/v1/queues/dequeue",
				map[string]string{"queue": args[0]})
			if err != nil {
				return err
			}
			return printResult(cmd, status, body)
		},
	}
}

// newQueueListCommand constructs the `queue list` subcommand.
func newQueueListCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List queues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := getJSON(cmd.Context(), baseURL()+"/v1/queues")
			if err != nil {
				return err
			}
			return printResult(cmd, status, body)
		},
	}
}
