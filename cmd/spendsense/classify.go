package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spendsense/spendsense/internal/cli"
	"github.com/spendsense/spendsense/internal/common"
	"github.com/spendsense/spendsense/internal/model"
	"github.com/spendsense/spendsense/internal/ofx"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify transactions from a file",
		Long: `Classify transactions from a JSON file (a transaction object or a list
of transaction objects) or an OFX/QFX bank statement.

Examples:
  spendsense classify transactions.json
  spendsense classify --ofx statement.qfx
  spendsense classify --ofx statement.qfx --features`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().String("ofx", "", "OFX/QFX statement file to classify")
	cmd.Flags().Bool("features", false, "print the feature vector for each transaction")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ofxPath, _ := cmd.Flags().GetString("ofx")
	showFeatures, _ := cmd.Flags().GetBool("features")

	txns, err := readTransactions(args, ofxPath)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions to classify."))
		return nil
	}

	loaded := loadArtifacts(viper.GetString("model.dir"))
	if loaded.model == nil {
		return common.NewUserError("no classifier model is available", common.ErrModelUnavailable)
	}
	engine := loaded.newEngine()

	// One reference time for the whole invocation keeps date fallbacks
	// consistent across the batch.
	ref := time.Now()

	bar := progressbar.NewOptions(len(txns),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Classifying transactions..."),
	)

	var results []model.ClassificationResult
	for _, txn := range txns {
		result, err := engine.Classify(ctx, txn, ref)
		if err != nil {
			result.Error = err.Error()
		}
		results = append(results, result)
		_ = bar.Add(1)
	}
	_, _ = fmt.Fprintln(os.Stderr)

	printResults(results, showFeatures)
	return nil
}

func readTransactions(args []string, ofxPath string) ([]model.Transaction, error) {
	if ofxPath != "" {
		file, err := os.Open(ofxPath)
		if err != nil {
			return nil, common.NewUserError("failed to open OFX file", err)
		}
		defer func() { _ = file.Close() }()

		return ofx.NewParser().ParseFile(file)
	}

	if len(args) == 0 {
		return nil, common.NewUserError("provide a JSON file or --ofx statement", common.ErrInvalidInput)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, common.NewUserError("failed to read transactions file", err)
	}

	var txns []model.Transaction
	if err := json.Unmarshal(data, &txns); err == nil {
		return txns, nil
	}

	var single model.Transaction
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, common.NewUserError("file is not a transaction or transaction list", err)
	}
	return []model.Transaction{single}, nil
}

func printResults(results []model.ClassificationResult, showFeatures bool) {
	fmt.Println(cli.TitleStyle.Render("Classification results"))

	var needs, wants, overrides, failures int
	for _, result := range results {
		if result.Error != "" {
			failures++
			fmt.Printf("%s  %s\n",
				cli.ErrorStyle.Render("error"),
				cli.SubtleStyle.Render(fmt.Sprintf("%s: %s", result.Transaction.Name, result.Error)))
			continue
		}

		switch result.Classification {
		case model.LabelNeed:
			needs++
		case model.LabelWant:
			wants++
		}

		line := fmt.Sprintf("%s  %-30s $%.2f  %s",
			cli.VerdictStyle(result.Classification).Render(fmt.Sprintf("%-7s", result.Classification)),
			result.Transaction.Name,
			float64(result.Transaction.Amount),
			cli.FormatConfidence(result.Confidence))

		if result.EducationOverride {
			overrides++
			line += "  " + cli.OverrideStyle.Render(fmt.Sprintf("(education override, model said %s)", result.OriginalClassification))
		}
		fmt.Println(line)

		if showFeatures && result.Features != nil {
			data, err := json.MarshalIndent(result.Features, "    ", "  ")
			if err == nil {
				fmt.Printf("    %s\n", cli.SubtleStyle.Render(string(data)))
			}
		}
	}

	summary := fmt.Sprintf("%d transactions: %d needs, %d wants", len(results), needs, wants)
	if overrides > 0 {
		summary += fmt.Sprintf(", %d overridden", overrides)
	}
	if failures > 0 {
		summary += fmt.Sprintf(", %d failed", failures)
	}
	fmt.Println(cli.InfoStyle.Render(summary))
}
