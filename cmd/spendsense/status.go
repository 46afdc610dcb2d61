package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spendsense/spendsense/internal/cli"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show model and indicator status",
		RunE:  runStatus,
	}
}

func runStatus(_ *cobra.Command, _ []string) error {
	dir := viper.GetString("model.dir")
	loaded := loadArtifacts(dir)

	fmt.Println(cli.TitleStyle.Render("spendsense status"))
	fmt.Printf("Model directory:  %s\n", dir)

	if loaded.model != nil {
		fmt.Printf("Model:            %s\n", cli.NeedStyle.Render(loaded.model.Describe()))
		fmt.Printf("Feature columns:  %d\n", loaded.schema.Len())
	} else {
		fmt.Printf("Model:            %s\n", cli.ErrorStyle.Render("not loaded"))
	}

	fmt.Printf("Need indicators:  %d (%s, ...)\n",
		loaded.indicators.NeedCount(),
		strings.Join(loaded.indicators.SampleNeed(5), ", "))
	fmt.Printf("Want indicators:  %d (%s, ...)\n",
		loaded.indicators.WantCount(),
		strings.Join(loaded.indicators.SampleWant(5), ", "))

	return nil
}
