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

package exporter

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/wso2/blo-register-service/internal/aggregation/model"
)

const (
	pageMargin   = 15.0
	contentTop   = 35.0
	rowHeight    = 7.0
	footerOffset = 10.0
)

type registerPDF struct {
	pdf       *fpdf.Fpdf
	tr        func(string) string
	register  model.Register
	pageTitle string
}

// RegisterPDF renders the printed register: a cover page, the statistical summary, the age cohort
// statement, the prospective voter, unregistered adult and marked voter lists, and a signature
// page. Everything shown comes from register.
func RegisterPDF(register model.Register) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	doc := &registerPDF{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		register: register,
	}
	pdf.SetMargins(pageMargin, contentTop, pageMargin)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetHeaderFunc(doc.header)
	pdf.SetFooterFunc(doc.footer)

	doc.coverPage()
	doc.summaryPage()
	doc.cohortPage()
	doc.prospectivePage()
	doc.unregisteredPage()
	doc.markedPage()
	doc.signaturePage()

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, errors.Wrap(err, "unable to render register")
	}
	return buffer.Bytes(), nil
}

func (d *registerPDF) newPage(title string) {
	d.pageTitle = title
	d.pdf.AddPage()
	d.pdf.SetY(contentTop)
}

// header runs on every page break. The cover page carries no header.
func (d *registerPDF) header() {
	if d.pdf.PageNo() == 1 {
		return
	}
	pageWidth, _ := d.pdf.GetPageSize()
	settings := d.register.Settings

	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.SetTextColor(100, 100, 100)
	d.pdf.Text(pageMargin, 10, d.tr(fmt.Sprintf("%s | Part: %s", settings.AssemblyConstituency, settings.Part)))
	d.pdf.Text(pageWidth-25, 10, fmt.Sprintf("Page %d", d.pdf.PageNo()))

	if d.pageTitle != "" {
		d.pdf.SetFont("Helvetica", "B", 16)
		d.pdf.SetTextColor(40, 40, 40)
		d.pdf.Text(pageMargin, 25, d.tr(d.pageTitle))
	}
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *registerPDF) footer() {
	pageWidth, pageHeight := d.pdf.GetPageSize()
	d.pdf.SetFont("Helvetica", "", 8)
	d.pdf.SetTextColor(150, 150, 150)
	text := "Generated on: " + d.register.GeneratedOn.Format("02/01/2006")
	if d.pdf.PageNo() == 1 {
		text = fmt.Sprintf("Generated %d | BLO Register App", d.register.GeneratedOn.Year())
	}
	d.pdf.SetXY(0, pageHeight-footerOffset-3)
	d.pdf.CellFormat(pageWidth, 6, text, "", 0, "C", false, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *registerPDF) coverPage() {
	d.newPage("")
	pageWidth, pageHeight := d.pdf.GetPageSize()
	settings := d.register.Settings

	d.pdf.Rect(5, 5, pageWidth-10, pageHeight-10, "D")
	d.pdf.SetY(25)
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.CellFormat(0, 8, "Election Commission of India", "", 1, "C", false, 0, "")
	d.pdf.Ln(8)
	d.pdf.SetFont("Helvetica", "B", 18)
	d.pdf.CellFormat(0, 10, "BOOTH LEVEL OFFICER'S REGISTER", "", 1, "C", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.CellFormat(0, 8, "Summary of Census and Electoral Roll Data", "", 1, "C", false, 0, "")

	d.pdf.SetY(80)
	identity := [][2]string{
		{"Assembly Constituency:", settings.AssemblyConstituency},
		{"Part No & Name:", settings.Part},
		{"BLO Name:", settings.BloName},
		{"BLO Designation:", settings.BloDesignation},
		{"BLO Address:", settings.BloAddress},
		{"BLO Mobile:", settings.BloMobile},
	}
	for _, row := range identity {
		d.pdf.SetFont("Helvetica", "B", 11)
		d.pdf.CellFormat(50, rowHeight, row[0], "", 0, "L", false, 0, "")
		d.pdf.SetFont("Helvetica", "", 11)
		d.pdf.CellFormat(0, rowHeight, d.tr(row[1]), "", 1, "L", false, 0, "")
	}
}

func (d *registerPDF) summaryPage() {
	d.newPage("Statistical Summary")
	census := d.register.Stats.Census
	election := d.register.Stats.Election

	d.table([]string{"Census Statistics", "Value"}, []float64{60, 25}, [][]string{
		{"Total Households", strconv.Itoa(census.TotalHouseholds)},
		{"Total Population", strconv.Itoa(census.TotalPopulation)},
		{"Male Population", strconv.Itoa(census.MalePopulation)},
		{"Female Population", strconv.Itoa(census.FemalePopulation)},
	})
	d.pdf.Ln(rowHeight)
	d.table([]string{"Election Statistics", "Value"}, []float64{85, 25}, [][]string{
		{"Total Electors", strconv.Itoa(election.TotalElectors)},
		{"Male Electors", strconv.Itoa(election.MaleElectors)},
		{"Female Electors", strconv.Itoa(election.FemaleElectors)},
		{"EP Ratio (Electors per 1000 population)", strconv.Itoa(election.EPRatio)},
		{"Gender Ratio (Females per 1000 males)", strconv.Itoa(election.GenderRatio)},
	})
}

func (d *registerPDF) cohortPage() {
	d.newPage("STATEMENT-1: Age Cohort Analysis")
	rows := make([][]string, 0, len(d.register.AgeCohorts))
	for _, cohort := range d.register.AgeCohorts {
		rows = append(rows, []string{
			cohort.Label, strconv.Itoa(cohort.Population), cohort.PopulationPercent, strconv.Itoa(cohort.Electors),
			cohort.ElectorPercent, cohort.RegistrationRate,
		})
	}
	d.table([]string{"Age Cohort", "Projected Population", "%age to Pop.", "Electors", "%age to Electors", "% Registered"},
		[]float64{25, 35, 28, 25, 32, 30}, rows)
}

func (d *registerPDF) prospectivePage() {
	d.newPage("List of Prospective Voters (Age 17)")
	rows := make([][]string, 0, len(d.register.ProspectiveVoters))
	for i, member := range d.register.ProspectiveVoters {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), member.Name, member.HofName, string(member.Gender), member.Dob, member.HouseNo,
			member.ContactPhone,
		})
	}
	d.table([]string{"S.No", "Name", "Parentage", "Gender", "DOB", "House No.", "Phone"},
		[]float64{12, 40, 38, 18, 24, 20, 28}, rows)
}

func (d *registerPDF) unregisteredPage() {
	d.newPage("List of Unregistered Voters (Age 18+)")
	rows := make([][]string, 0, len(d.register.UnregisteredAdults))
	for i, member := range d.register.UnregisteredAdults {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), member.Name, member.HofName, string(member.Gender), strconv.Itoa(member.Age),
			member.HouseNo, member.ContactPhone,
		})
	}
	d.table([]string{"S.No", "Name", "Parentage", "Gender", "Age", "House No.", "Phone"},
		[]float64{12, 42, 40, 18, 14, 24, 30}, rows)
}

func (d *registerPDF) markedPage() {
	d.newPage("List of Marked Voters (Expired/Shifted/Duplicate)")
	if len(d.register.MarkedVoters) == 0 {
		d.pdf.SetFont("Helvetica", "", 10)
		d.pdf.CellFormat(0, rowHeight, "No voters have been marked as Expired, Shifted, or Duplicate.", "", 1, "L",
			false, 0, "")
		return
	}
	rows := make([][]string, 0, len(d.register.MarkedVoters))
	for i, voter := range d.register.MarkedVoters {
		rows = append(rows, []string{strconv.Itoa(i + 1), voter.EpicNo, voter.Name, string(voter.Status), voter.HouseNo})
	}
	d.table([]string{"S.No", "EPIC No", "Name", "Status", "House No."}, []float64{14, 36, 60, 30, 30}, rows)
}

func (d *registerPDF) signaturePage() {
	d.newPage("")
	pageWidth, pageHeight := d.pdf.GetPageSize()
	finalY := pageHeight - 40

	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.Text(40, finalY, "Signature of BLO")
	d.pdf.Text(40, finalY+5, "(with date and seal)")
	d.pdf.Text(pageWidth-80, finalY, "Signature of Supervisor")
	d.pdf.Text(pageWidth-80, finalY+5, "(with date and seal)")
}

func (d *registerPDF) table(headers []string, widths []float64, rows [][]string) {
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.SetFillColor(41, 128, 185)
	d.pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		d.pdf.CellFormat(widths[i], rowHeight, header, "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, value := range row {
			d.pdf.CellFormat(widths[i], rowHeight, d.tr(value), "1", 0, "L", false, 0, "")
		}
		d.pdf.Ln(-1)
	}
}
