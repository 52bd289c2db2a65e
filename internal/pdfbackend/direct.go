package pdfbackend

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-builder/internal/textfmt"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	pageMargin = 15.0
	bodyLine   = 5.0
	accentR    = 41
	accentG    = 98
	accentB    = 255
)

// DirectRenderer writes the resume as a PDF document with the pure-Go
// engine. It lays the document out itself rather than printing the HTML
// rendition, so it works without any external binaries.
type DirectRenderer struct{}

// NewDirectRenderer returns a renderer backed by the pure-Go PDF engine
func NewDirectRenderer() *DirectRenderer {
	return &DirectRenderer{}
}

// Render produces the complete PDF document for the resume
func (r *DirectRenderer) Render(data *types.ResumeData, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r.header(pdf, tr, data)
	r.summary(pdf, tr, data)
	r.experience(pdf, tr, data)
	r.skills(pdf, tr, data)
	r.education(pdf, tr, data)
	r.certifications(pdf, tr, data, now)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf generation failed: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *DirectRenderer) header(pdf *fpdf.Fpdf, tr func(string) string, data *types.ResumeData) {
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(33, 33, 33)
	pdf.CellFormat(0, 10, tr(data.PersonalInfo.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(accentR, accentG, accentB)
	pdf.CellFormat(0, 7, tr(data.PersonalInfo.Title), "", 1, "L", false, 0, "")

	contact := []string{data.PersonalInfo.Email}
	if data.PersonalInfo.Phone != "" {
		contact = append(contact, textfmt.Phone(data.PersonalInfo.Phone))
	}
	loc := data.PersonalInfo.Location
	contact = append(contact, fmt.Sprintf("%s, %s", loc.City, loc.State))
	if links := data.PersonalInfo.Links; links != nil {
		if links.LinkedIn != "" {
			contact = append(contact, textfmt.URL(links.LinkedIn))
		}
		if links.GitHub != "" {
			contact = append(contact, textfmt.URL(links.GitHub))
		}
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, tr(strings.Join(contact, "  |  ")), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func (r *DirectRenderer) sectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(accentR, accentG, accentB)
	pdf.CellFormat(0, 7, tr(strings.ToUpper(title)), "", 1, "L", false, 0, "")

	pdf.SetDrawColor(accentR, accentG, accentB)
	y := pdf.GetY()
	pageW, _ := pdf.GetPageSize()
	pdf.Line(pageMargin, y, pageW-pageMargin, y)
	pdf.Ln(2)
}

func (r *DirectRenderer) summary(pdf *fpdf.Fpdf, tr func(string) string, data *types.ResumeData) {
	r.sectionTitle(pdf, tr, "Professional Summary")

	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(33, 33, 33)
	pdf.MultiCell(0, bodyLine, tr(data.ProfessionalSummary.Headline), "", "L", false)
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, bodyLine, tr(data.ProfessionalSummary.Overview), "", "L", false)
}

func (r *DirectRenderer) experience(pdf *fpdf.Fpdf, tr func(string) string, data *types.ResumeData) {
	r.sectionTitle(pdf, tr, "Professional Experience")

	for i := range data.Experience {
		exp := &data.Experience[i]

		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(33, 33, 33)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s - %s", exp.Role, exp.Company)), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 100, 100)
		meta := textfmt.DateRange(exp.StartDate, exp.EndDate)
		if exp.Location != "" {
			meta += "  |  " + exp.Location
		}
		pdf.CellFormat(0, 5, tr(meta), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(33, 33, 33)
		for j := range exp.Achievements {
			a := &exp.Achievements[j]
			text := a.Description
			if len(a.Metrics) > 0 {
				parts := make([]string, 0, len(a.Metrics))
				for _, m := range a.Metrics {
					parts = append(parts, m.Value+m.Unit)
				}
				text += fmt.Sprintf(" (%s)", strings.Join(parts, ", "))
			}
			pdf.SetX(pageMargin + 4)
			pdf.MultiCell(0, bodyLine, tr("- "+text), "", "L", false)
		}
		pdf.Ln(2)
	}
}

func (r *DirectRenderer) skills(pdf *fpdf.Fpdf, tr func(string) string, data *types.ResumeData) {
	if len(data.Skills.Categories) == 0 {
		return
	}
	r.sectionTitle(pdf, tr, "Technical Skills")

	keys := make([]string, 0, len(data.Skills.Categories))
	for key := range data.Skills.Categories {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		pi := data.Skills.Categories[keys[i]].Priority
		pj := data.Skills.Categories[keys[j]].Priority
		if pi != pj {
			return pi < pj
		}
		return keys[i] < keys[j]
	})

	for _, key := range keys {
		category := data.Skills.Categories[key]
		name := category.DisplayName
		if name == "" {
			name = key
		}

		items := make([]string, 0, len(category.Skills))
		for _, s := range category.Skills {
			items = append(items, fmt.Sprintf("%s (%s)", s.Name, s.Proficiency))
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(33, 33, 33)
		pdf.CellFormat(0, 5, tr(name+":"), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetX(pageMargin + 4)
		pdf.MultiCell(0, 4.5, tr(strings.Join(items, ", ")), "", "L", false)
		pdf.Ln(1)
	}
}

func (r *DirectRenderer) education(pdf *fpdf.Fpdf, tr func(string) string, data *types.ResumeData) {
	r.sectionTitle(pdf, tr, "Education")

	for i := range data.Education {
		edu := &data.Education[i]

		degree := edu.Degree
		if edu.FieldOfStudy != "" {
			degree += " in " + edu.FieldOfStudy
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(33, 33, 33)
		pdf.CellFormat(0, 5, tr(degree), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s, %s", edu.Institution, edu.GraduationDate)), "", 1, "L", false, 0, "")
		pdf.Ln(1)
	}
}

func (r *DirectRenderer) certifications(pdf *fpdf.Fpdf, tr func(string) string, data *types.ResumeData, now time.Time) {
	active := data.ActiveCertifications(now)
	if len(active) == 0 {
		return
	}
	r.sectionTitle(pdf, tr, "Certifications")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(33, 33, 33)
	for i := range active {
		c := &active[i]
		pdf.SetX(pageMargin + 4)
		pdf.MultiCell(0, 4.5, tr(fmt.Sprintf("- %s, %s (%s)", c.Name, c.Issuer, textfmt.YearMonth(c.DateEarned))), "", "L", false)
	}
}
