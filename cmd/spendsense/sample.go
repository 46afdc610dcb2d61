package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendsense/spendsense/internal/server"
)

func sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print sample transactions as JSON",
		Long: `Print the fixed set of sample transactions as a JSON list, suitable
for piping into "spendsense classify" or posting to /api/predict.`,
		RunE: runSample,
	}
}

func runSample(_ *cobra.Command, _ []string) error {
	data, err := json.MarshalIndent(server.SampleTransactions(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode samples: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
