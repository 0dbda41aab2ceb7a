package cmd

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

var pingURL string

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Call /healthz on a running server and print the reply",
	RunE: func(cmd *cobra.Command, _ []string) error {
		body, err := ping(cmd, pingURL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	},
}

func init() {
	pingCmd.Flags().StringVar(&pingURL, "url", "http://localhost:7320", "server base URL")
}

func ping(cmd *cobra.Command, baseURL string) (string, error) {
	url := strings.TrimRight(baseURL, "/") + "/healthz"
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("can't create request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: %s: %s", url, resp.Status, body)
	}
	return string(body), nil
}
