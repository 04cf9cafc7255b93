// Command tablecoredemo drives the table pagination core against a named
// scenario fixture and prints the resulting fragment sequence, the same way
// a developer would eyeball a layouter's output without reaching for a
// debugger.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boergens/tablecore/table"
)

var (
	scenariosPath string
	pageConfig    string
)

var rootCmd = &cobra.Command{
	Use:   "tablecoredemo [scenario]",
	Short: "tablecoredemo lays out a seed table scenario and prints its fragments",
	Long: "tablecoredemo runs the table pagination core against one of the named\n" +
		"scenarios in testdata/scenarios.yaml and prints the emitted fragment\n" +
		"sequence as a table: row range, y, height, header count and any\n" +
		"mid-row split, one line per fragment.",
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

func init() {
	rootCmd.Flags().StringVar(&scenariosPath, "scenarios", "testdata/scenarios.yaml", "path to the scenario fixture file")
	rootCmd.Flags().StringVar(&pageConfig, "page-config", "", "optional TOML file overriding a scenario's page geometry")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	scenarios, err := loadScenarios(scenariosPath)
	if err != nil {
		return err
	}

	scenario, err := findScenario(scenarios, args[0])
	if err != nil {
		return err
	}

	geom := pageGeometry{
		PageHeight:     scenario.PageHeight,
		ColumnWidth:    scenario.ColumnWidth,
		ColumnsPerPage: scenario.ColumnsPerPage,
	}
	if pageConfig != "" {
		override, err := loadPageGeometry(pageConfig)
		if err != nil {
			return err
		}
		geom = applyOverrides(geom, override)
	}

	block, measure := scenario.build()
	paginator := newDemoPaginator(geom)

	if err := table.LayoutTable(block, measure, paginator); err != nil {
		return fmt.Errorf("laying out scenario %q: %w", scenario.Name, err)
	}

	return renderFragments(cmd.OutOrStdout(), paginator.AllFragments())
}

func main() {
	Execute()
}
