package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mdouchement/todolist/internal/client"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	endpoint string
	yes      bool
)

func main() {
	c := &cobra.Command{
		Use:     "todoctl",
		Short:   "Todo list client",
		Version: fmt.Sprintf("%s - build %.7s @ %s", version, revision, date),
		Args:    cobra.NoArgs,
	}
	c.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "Server endpoint (default $"+client.EndpointEnv+")")

	rmCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	c.AddCommand(listCmd)
	c.AddCommand(addCmd)
	c.AddCommand(editCmd)
	c.AddCommand(doneCmd)
	c.AddCommand(colorCmd)
	c.AddCommand(rmCmd)
	c.AddCommand(mvCmd)

	if err := c.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func ids(args ...string) ([]int, error) {
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", arg)
		}
		ids[i] = id
	}
	return ids, nil
}

var (
	listCmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all the todos",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := client.New(endpoint)
			if err != nil {
				return err
			}
			return c.List()
		},
	}

	addCmd = &cobra.Command{
		Use:   "add [TEXT]",
		Short: "Add a todo at the end of the list",
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := client.New(endpoint)
			if err != nil {
				return err
			}
			return c.Add(strings.Join(args, " "))
		},
	}

	editCmd = &cobra.Command{
		Use:   "edit ID TEXT",
		Short: "Replace the description of a todo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := ids(args[0])
			if err != nil {
				return err
			}

			c, err := client.New(endpoint)
			if err != nil {
				return err
			}
			return c.Edit(id[0], strings.Join(args[1:], " "))
		},
	}

	doneCmd = &cobra.Command{
		Use:   "done ID",
		Short: "Mark a todo as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := ids(args[0])
			if err != nil {
				return err
			}

			c, err := client.New(endpoint)
			if err != nil {
				return err
			}
			return c.Done(id[0])
		},
	}

	colorCmd = &cobra.Command{
		Use:   "color ID HEX",
		Short: "Change the color of a todo",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := ids(args[0])
			if err != nil {
				return err
			}

			c, err := client.New(endpoint)
			if err != nil {
				return err
			}
			return c.Color(id[0], args[1])
		},
	}

	rmCmd = &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := ids(args[0])
			if err != nil {
				return err
			}

			c, err := client.New(endpoint)
			if err != nil {
				return err
			}
			return c.Remove(id[0], yes)
		},
	}

	mvCmd = &cobra.Command{
		Use:   "mv ID POSITION",
		Short: "Move a todo to the given position",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := ids(args...)
			if err != nil {
				return err
			}

			c, err := client.New(endpoint)
			if err != nil {
				return err
			}
			return c.Move(v[0], v[1])
		},
	}
)
