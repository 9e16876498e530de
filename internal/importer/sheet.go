/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package importer

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Sheet is a worksheet reduced to its header row and data rows. Cells hold either a string or,
// for numeric cells, a float64 so that spreadsheet serial dates can be told apart from text.
type Sheet struct {
	Headers []string
	Rows    [][]interface{}
}

// Record is one data row keyed by its column header.
type Record map[string]interface{}

// Records pairs every non-blank row with the header row. Columns without a header are dropped.
func (s Sheet) Records() []Record {
	records := make([]Record, 0, len(s.Rows))
	for _, row := range s.Rows {
		record := Record{}
		blank := true
		for i, header := range s.Headers {
			if header == "" || i >= len(row) {
				continue
			}
			value := row[i]
			if CellString(value) != "" {
				blank = false
			}
			record[header] = value
		}
		if !blank {
			records = append(records, record)
		}
	}
	return records
}

// ReadFirstSheet reads the first worksheet of an xlsx workbook.
func ReadFirstSheet(reader io.Reader) (Sheet, error) {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return Sheet{}, errors.Wrap(err, "unable to open workbook")
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return Sheet{}, errors.New("workbook has no worksheets")
	}
	name := sheets[0]
	rows, err := workbook.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return Sheet{}, errors.Wrapf(err, "unable to read worksheet %q", name)
	}
	if len(rows) == 0 {
		return Sheet{}, nil
	}

	sheet := Sheet{Headers: make([]string, len(rows[0]))}
	for i, header := range rows[0] {
		sheet.Headers[i] = strings.TrimSpace(header)
	}
	for r, row := range rows[1:] {
		cells := make([]interface{}, len(row))
		for c, raw := range row {
			cells[c] = typedCell(workbook, name, c+1, r+2, raw)
		}
		sheet.Rows = append(sheet.Rows, cells)
	}
	return sheet, nil
}

// typedCell keeps numeric cells numeric. Text, booleans and formulas stay strings.
func typedCell(workbook *excelize.File, sheetName string, col, row int, raw string) interface{} {
	if raw == "" {
		return ""
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return raw
	}
	cellType, err := workbook.GetCellType(sheetName, axis)
	if err != nil {
		return raw
	}
	if cellType != excelize.CellTypeNumber && cellType != excelize.CellTypeUnset {
		return raw
	}
	if number, err := strconv.ParseFloat(raw, 64); err == nil {
		return number
	}
	return raw
}

// CellString renders a cell as trimmed text. Whole numbers print without a fraction.
func CellString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
