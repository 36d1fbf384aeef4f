package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL string
	timeout time.Duration

	bcryptGenerate = bcrypt.GenerateFromPassword
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loanledger-cli",
		Short: "Dinheiro Rapido CLI tool",
		Long:  `A command line interface for interacting with the loan ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the loan ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(loansCmd())
	rootCmd.AddCommand(receiptCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show dashboard totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiGet("/api/v1/reports/dashboard")
			if err != nil {
				return err
			}

			var result map[string]any
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printJSON(result)
			return nil
		},
	}
}

func loansCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "loans",
		Short: "List loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/loans/"
			if status != "" {
				path += "?status=" + status
			}

			body, err := apiGet(path)
			if err != nil {
				return err
			}

			var loans []struct {
				ID          string `json:"id"`
				ClientID    string `json:"client_id"`
				Amount      string `json:"amount"`
				TotalAmount string `json:"total_amount"`
				PaymentType string `json:"payment_type"`
				Status      string `json:"status"`
			}
			if err := json.Unmarshal(body, &loans); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Printf("%-28s %-28s %-12s %-12s %-14s %s\n",
				"ID", "CLIENT", "AMOUNT", "TOTAL", "TYPE", "STATUS")
			for _, l := range loans {
				fmt.Printf("%-28s %-28s %-12s %-12s %-14s %s\n",
					truncate(l.ID, 28), truncate(l.ClientID, 28),
					l.Amount, l.TotalAmount, l.PaymentType, l.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (active, completed, defaulted)")
	return cmd
}

func receiptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <id>",
		Short: "Print a receipt as shareable text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiGet("/api/v1/receipts/" + args[0] + "/text")
			if err != nil {
				return err
			}

			fmt.Println(string(body))
			return nil
		},
	}
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Recompute the status of every open loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiPost("/api/v1/loans/sweep")
			if err != nil {
				return err
			}

			var result map[string]int
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Printf("examined %d loans, transitioned %d\n",
				result["examined"], result["transitioned"])
			return nil
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Generate a bcrypt hash for seeding users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			fmt.Println(string(hash))
			return nil
		},
	}
}

func apiGet(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return readResponse(resp)
}

func apiPost(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return readResponse(resp)
}

func readResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
