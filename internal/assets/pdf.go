package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

type rgb struct{ r, g, b int }

// PeakOps brand palette
var (
	brandBlue = rgb{37, 99, 235}   // #2563eb
	brandCyan = rgb{34, 211, 238}  // #22d3ee
	brandDark = rgb{15, 23, 42}    // #0f172a
	brandGray = rgb{100, 116, 139} // #64748b
	brandBG   = rgb{248, 250, 252} // #f8fafc
)

const tagline = "Your productivity engineers for modern teams."

// GeneratePDFs renders the branded PDF for every lead magnet into dir and
// returns the written file paths.
func GeneratePDFs(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, m := range Catalog() {
		path := filepath.Join(dir, m.Filename)
		if err := generatePDF(m, path); err != nil {
			return written, fmt.Errorf("failed to generate %s: %w", m.Filename, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func generatePDF(m LeadMagnet, path string) error {
	doc := newBrandedDoc()
	doc.header()
	doc.title(m.Title)
	doc.body(m.Intro)
	for _, s := range m.Sections {
		doc.section(s, m.Checkboxes)
	}
	if m.ClosingTitle != "" {
		doc.heading(m.ClosingTitle)
		doc.body(m.Closing)
	}
	doc.contactPage()
	return doc.pdf.OutputFileAndClose(path)
}

// brandedDoc wraps fpdf with the PeakOps page furniture.
type brandedDoc struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newBrandedDoc() *brandedDoc {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(19, 25, 19)
	pdf.SetAutoPageBreak(true, 19)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(brandGray.r, brandGray.g, brandGray.b)
		pdf.CellFormat(0, 10, fmt.Sprintf("PeakOps Automation | Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	doc := &brandedDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.AddPage()
	return doc
}

func (d *brandedDoc) setColor(c rgb) {
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

// header renders the brand mark and tagline at the top of the first page.
func (d *brandedDoc) header() {
	d.pdf.SetFont("Helvetica", "B", 20)
	d.setColor(brandBlue)
	d.pdf.CellFormat(0, 10, d.tr("PeakOps Automation"), "", 1, "C", false, 0, "")

	d.pdf.SetFont("Helvetica", "I", 10)
	d.setColor(brandGray)
	d.pdf.CellFormat(0, 6, d.tr(tagline), "", 1, "C", false, 0, "")

	// Cyan divider under the brand mark. Letter is 215.9mm wide with 19mm margins.
	d.pdf.SetDrawColor(brandCyan.r, brandCyan.g, brandCyan.b)
	d.pdf.SetLineWidth(0.8)
	y := d.pdf.GetY() + 2
	d.pdf.Line(19, y, 196.9, y)
	d.pdf.Ln(8)
}

func (d *brandedDoc) title(s string) {
	d.pdf.SetFont("Helvetica", "B", 24)
	d.setColor(brandBlue)
	d.pdf.MultiCell(0, 10, d.tr(s), "", "C", false)
	d.pdf.Ln(4)
}

func (d *brandedDoc) heading(s string) {
	d.pdf.SetFont("Helvetica", "B", 14)
	d.setColor(brandBlue)
	d.pdf.SetFillColor(brandBG.r, brandBG.g, brandBG.b)
	d.pdf.CellFormat(0, 9, d.tr(" "+s), "", 1, "L", true, 0, "")
	d.pdf.Ln(1)
}

func (d *brandedDoc) body(s string) {
	d.pdf.SetFont("Helvetica", "", 11)
	d.setColor(brandDark)
	d.pdf.MultiCell(0, 6, d.tr(s), "", "J", false)
	d.pdf.Ln(3)
}

func (d *brandedDoc) section(s Section, checkboxes bool) {
	d.heading(s.Title)
	d.pdf.SetFont("Helvetica", "", 10)
	d.setColor(brandDark)

	bullet := "• "
	if checkboxes {
		bullet = "[  ] "
	}
	for _, item := range s.Items {
		d.pdf.SetX(24)
		d.pdf.MultiCell(0, 5.5, d.tr(bullet+item), "", "L", false)
	}
	d.pdf.Ln(3)
}

// contactPage renders the closing page with contact details and service tiers.
func (d *brandedDoc) contactPage() {
	d.pdf.AddPage()
	d.heading("Get Started with PeakOps")
	d.body("Ready to streamline your workflows and save hours every week? " +
		"PeakOps Automation specializes in building custom automation solutions " +
		"for busy professionals and small teams.")

	for _, row := range [][2]string{
		{"Website:", "peakops.club"},
		{"Email:", "hello@peakops.club"},
		{"Schedule:", "calendly.com/peakops"},
	} {
		d.pdf.SetFont("Helvetica", "B", 11)
		d.setColor(brandDark)
		d.pdf.CellFormat(38, 7, d.tr(row[0]), "", 0, "L", false, 0, "")
		d.pdf.SetFont("Helvetica", "", 11)
		d.pdf.CellFormat(0, 7, d.tr(row[1]), "", 1, "L", false, 0, "")
	}
	d.pdf.Ln(6)

	d.pdf.SetFont("Helvetica", "B", 13)
	d.setColor(brandDark)
	d.pdf.CellFormat(0, 8, d.tr("Our Services"), "", 1, "L", false, 0, "")
	d.pdf.Ln(1)

	d.pdf.SetFont("Helvetica", "", 10)
	for _, t := range Tiers() {
		label := t.Name
		if t.Price != "Free" {
			label += " (" + t.Price + ")"
		}
		d.pdf.SetX(24)
		d.pdf.MultiCell(0, 5.5, d.tr("• "+label+" - "+t.Blurb), "", "L", false)
	}
	d.pdf.Ln(8)

	d.pdf.SetFont("Helvetica", "", 9)
	d.setColor(brandGray)
	d.pdf.CellFormat(0, 5, d.tr("© 2025 PeakOps Automation. All rights reserved."), "", 1, "C", false, 0, "")
}
