package parser

import (
	"fmt"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

// BuildMaster concatenates typed tables into the family's master table in
// input order, projecting each onto the canonical schema first. Row counts
// are conserved: the master has exactly the sum of its inputs' rows. An
// empty input yields nil, which callers treat as "no data for this family".
func BuildMaster(family model.Family, tables []*model.Table) (*model.Table, error) {
	if len(tables) == 0 {
		return nil, nil
	}
	schema := model.SchemaFor(family)
	if schema == nil {
		return nil, fmt.Errorf("family %s has no canonical schema", family)
	}

	master := model.NewTable()
	for _, name := range schema {
		master.Columns = append(master.Columns, model.Column{Name: name})
	}

	total := 0
	for _, t := range tables {
		projected := t.Project(schema)
		total += projected.RowCount()
		for i := range master.Columns {
			master.Columns[i].Cells = append(master.Columns[i].Cells, projected.Columns[i].Cells...)
		}
	}

	for i := range master.Columns {
		if got := len(master.Columns[i].Cells); got != total {
			return nil, fmt.Errorf("master %s column %q has %d rows, inputs total %d",
				family, master.Columns[i].Name, got, total)
		}
	}
	return master, nil
}

// BuildMasterTable transforms every classified sheet belonging to the family
// and merges the results. Sheets of other families, including unknown ones,
// are skipped rather than failed.
func BuildMasterTable(family model.Family, sheets []ClassifiedSheet) (*model.Table, []string, error) {
	var tables []*model.Table
	var warnings []string

	for _, cs := range sheets {
		f, ok := cs.Type.Family()
		if !ok || f != family {
			continue
		}
		t, w, err := TransformSheet(cs)
		warnings = append(warnings, w...)
		if err != nil {
			return nil, warnings, err
		}
		tables = append(tables, t)
	}

	master, err := BuildMaster(family, tables)
	return master, warnings, err
}
