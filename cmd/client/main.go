// cmd/client/main.go
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edutechlabs/edutech-agents/internal/client"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		endpoint  string
		agentName string
		message   string
		htmlOut   bool
	)

	cmd := &cobra.Command{
		Use:   "edutech",
		Short: "Query the EduTech multi-agent backend",
		Long: `Send a query to the EduTech backend and print the responding agent's answer.

Examples:
  edutech                              # Interactive prompt
  edutech -m "Explain recursion"       # One-shot query
  edutech -a exam_prep -m "B-trees"    # Query one agent directly
  edutech --html -m "Hello"            # Emit the HTML fragment rendering`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(endpoint, agentName, message, htmlOut)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", client.DefaultEndpoint, "backend base URL")
	cmd.Flags().StringVarP(&agentName, "agent", "a", "", "query a specific agent instead of routing")
	cmd.Flags().StringVarP(&message, "message", "m", "", "one-shot query (omit for interactive mode)")
	cmd.Flags().BoolVar(&htmlOut, "html", false, "print the HTML fragment instead of plain text")

	return cmd
}

func run(endpoint, agentName, message string, htmlOut bool) error {
	var (
		sink client.Sink
		html *client.HTMLSink
	)
	if htmlOut {
		html = &client.HTMLSink{}
		sink = html
	} else {
		sink = &client.ConsoleSink{Out: os.Stdout}
	}

	submitter, err := client.NewSubmitter(endpoint, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	submit := func(query string) error {
		var err error
		if agentName != "" {
			err = submitter.SubmitTo(context.Background(), agentName, query)
		} else {
			err = submitter.Submit(context.Background(), query)
		}
		if errors.Is(err, client.ErrEmptyQuery) {
			// validation alert: nothing was sent
			fmt.Fprintln(os.Stderr, "Please enter a query.")
		}
		if htmlOut {
			fmt.Println(html.HTML())
		}
		return err
	}

	if message != "" {
		return submit(message)
	}

	// Interactive mode
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" {
			return nil
		}
		// failures are already rendered through the sink; keep the loop going
		_ = submit(line)
	}
}
