package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagClassifyThreshold float64

var classifyCmd = &cobra.Command{
	Use:   "classify <text>",
	Short: "Print the route a message is classified into",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().Float64Var(&flagClassifyThreshold, "threshold", 0, "Minimum score for a named route (default from config)")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	threshold := a.Config.Router.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = flagClassifyThreshold
	}

	res, err := a.Router.Classify(cmd.Context(), strings.Join(args, " "), threshold)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "route=%s score=%.4f threshold=%.2f\n", res.Route, res.Score, threshold)
	return nil
}
