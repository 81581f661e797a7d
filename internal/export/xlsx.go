package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/esg-leads-cli/internal/model"
)

// WriteWorkbook writes a workbook with a "leads" sheet and, when contacts are
// present, a "contacts" sheet.
func WriteWorkbook(leads []model.ClassifiedLead, contacts []model.Contact, path string, opts Options) error {
	f := xlsx.NewFile()

	leadSheet, err := f.AddSheet("leads")
	if err != nil {
		return eris.Wrap(err, "export: add leads sheet")
	}
	writeRow(leadSheet, headerRow(opts))
	for _, lead := range leads {
		writeRow(leadSheet, leadRow(lead, opts))
	}

	if len(contacts) > 0 {
		contactSheet, addErr := f.AddSheet("contacts")
		if addErr != nil {
			return eris.Wrap(addErr, "export: add contacts sheet")
		}
		writeRow(contactSheet, contactColumns)
		for _, c := range contacts {
			writeRow(contactSheet, contactRow(c))
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save workbook")
	}
	return nil
}

func writeRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
