package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boergens/tablecore/table"
)

// ScenarioFile is the on-disk shape of testdata/scenarios.yaml: a named
// list of small tables plus the page geometry to lay each one out against.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one seed table, sized and shaped explicitly rather than run
// through a real measurement pass - this CLI exercises the pagination core
// in isolation, the same way the package's own seed tests do.
type Scenario struct {
	Name           string        `yaml:"name"`
	PageHeight     float64       `yaml:"pageHeight"`
	ColumnWidth    float64       `yaml:"columnWidth"`
	ColumnsPerPage int           `yaml:"columnsPerPage"`
	Rows           []ScenarioRow `yaml:"rows"`
}

type ScenarioRow struct {
	Height       float64        `yaml:"height"`
	CantSplit    bool           `yaml:"cantSplit"`
	RepeatHeader bool           `yaml:"repeatHeader"`
	Cells        []ScenarioCell `yaml:"cells"`
}

type ScenarioCell struct {
	Lines []float64 `yaml:"lines"`
}

// loadScenarios reads and parses the scenario fixture file.
func loadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scenarios: %w", err)
	}
	return file.Scenarios, nil
}

func findScenario(scenarios []Scenario, name string) (*Scenario, error) {
	for i := range scenarios {
		if scenarios[i].Name == name {
			return &scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("no scenario named %q", name)
}

// build converts a fixture scenario into the table package's block and
// measure types.
func (s *Scenario) build() (*table.TableBlock, *table.TableMeasure) {
	rows := make([]table.TableRow, len(s.Rows))
	rowMeasures := make([]table.RowMeasure, len(s.Rows))
	var totalHeight float64

	for i, r := range s.Rows {
		cells := make([]table.TableCell, len(r.Cells))
		cellMeasures := make([]table.CellMeasure, len(r.Cells))
		for j, c := range r.Cells {
			cells[j] = table.TableCell{
				Blocks: []table.ContentBlock{table.ParagraphBlock{}},
				Attrs:  table.CellAttrs{Padding: &table.Padding{}},
			}
			lines := make([]table.LineMeasure, len(c.Lines))
			for k, h := range c.Lines {
				lines[k] = table.LineMeasure{LineHeight: h}
			}
			cellMeasures[j] = table.CellMeasure{Blocks: []table.BlockMeasure{{Lines: lines}}}
		}

		rows[i] = table.TableRow{
			Cells: cells,
			Attrs: table.TableRowAttrs{CantSplit: r.CantSplit, RepeatHeader: r.RepeatHeader},
		}
		rowMeasures[i] = table.RowMeasure{Height: r.Height, Cells: cellMeasures}
		totalHeight += r.Height
	}

	block := &table.TableBlock{ID: table.BlockID(s.Name), Rows: rows}
	measure := &table.TableMeasure{Rows: rowMeasures, TotalHeight: totalHeight}
	return block, measure
}
