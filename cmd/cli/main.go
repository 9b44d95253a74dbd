package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bizbooks-cli",
		Short: "BizBooks CLI tool",
		Long:  `A command line interface for interacting with the BizBooks reporting API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the BizBooks API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(statementCmd())
	rootCmd.AddCommand(stockCmd())
	rootCmd.AddCommand(partiesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func statementCmd() *cobra.Command {
	var (
		scope    string
		partyID  string
		docTypes string
		from     string
		to       string
		search   string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Fetch a ledger statement page",
		Run: func(cmd *cobra.Command, args []string) {
			query := url.Values{}
			setIfNotEmpty(query, "scope", scope)
			setIfNotEmpty(query, "party_id", partyID)
			setIfNotEmpty(query, "types", docTypes)
			setIfNotEmpty(query, "from", from)
			setIfNotEmpty(query, "to", to)
			setIfNotEmpty(query, "q", search)
			if page > 0 {
				query.Set("page", fmt.Sprint(page))
			}
			if pageSize > 0 {
				query.Set("page_size", fmt.Sprint(pageSize))
			}
			fetchAndPrint("/api/v1/statement", query)
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "", "Statement scope: all, customers, suppliers")
	cmd.Flags().StringVar(&partyID, "party", "", "Filter by party id")
	cmd.Flags().StringVar(&docTypes, "types", "", "Comma-separated document types")
	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&search, "search", "", "Free-text search")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Page size")

	return cmd
}

func stockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Stock reporting",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "report",
		Short: "Fetch the classified stock report",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/stock/report", nil)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Fetch inventory-wide status counts and valuation",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/stock/summary", nil)
		},
	})

	return cmd
}

func partiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parties",
		Short: "List customers and suppliers",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAndPrint("/api/v1/parties", nil)
		},
	}
}

func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func fetchAndPrint(path string, query url.Values) {
	target := baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(target)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
