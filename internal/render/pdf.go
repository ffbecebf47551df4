package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"reqdoc/internal/types"
)

// pdfDoc wraps an fpdf instance with the selected font family and the text
// translator needed when falling back to the built-in core fonts.
type pdfDoc struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

// WritePDF renders the document as <dir>/Requirements_v<version>.pdf and
// returns the written path. When fontPath points to an existing TTF it is
// registered as a Unicode font so non-Latin scripts render correctly;
// otherwise the built-in Helvetica is used, accepting possible glyph loss.
func WritePDF(doc *types.StructuredRequirements, dir string, version int, fontPath string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &RenderError{Format: "pdf", Message: "failed to create output directory", Cause: err}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)

	d := &pdfDoc{pdf: pdf, family: "Helvetica"}
	if usableFont(fontPath) {
		// Register the same face for every style so headings and
		// emphasis never drop back to a non-Unicode font.
		pdf.AddUTF8Font("unicode", "", fontPath)
		pdf.AddUTF8Font("unicode", "B", fontPath)
		pdf.AddUTF8Font("unicode", "I", fontPath)
		d.family = "unicode"
		d.tr = func(s string) string { return s }
	} else {
		d.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()
	d.title(titleOrDefault(doc.Title))

	if len(doc.Figures) > 0 {
		d.heading(headingFigures)
		for i, f := range doc.Figures {
			d.text(fmt.Sprintf("%d. %s", i+1, f.Caption), 0)
		}
		pdf.Ln(4)
	}

	for _, section := range doc.Sections {
		d.heading(section.Heading)
		for _, bullet := range section.Bullets {
			d.bullet(bullet, 0)
		}
		for _, sub := range section.Subheadings {
			d.subheading(sub.Title)
			for _, bullet := range sub.Bullets {
				d.bullet(bullet, 1)
			}
		}
		pdf.Ln(4)
	}

	// Assumptions and Out of Scope each start on a fresh page.
	pdf.AddPage()
	d.heading(headingAssumptions)
	for _, a := range doc.Assumptions {
		d.bullet(a, 0)
	}

	pdf.AddPage()
	d.heading(headingOutOfScope)
	for _, o := range doc.OutOfScope {
		d.bullet(o, 0)
	}

	path := filepath.Join(dir, FileName(version, "pdf"))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", &RenderError{Format: "pdf", Message: "failed to write file", Cause: err}
	}
	return path, nil
}

// usableFont reports whether fontPath names an existing font file.
func usableFont(fontPath string) bool {
	if fontPath == "" {
		return false
	}
	info, err := os.Stat(fontPath)
	return err == nil && !info.IsDir()
}

func (d *pdfDoc) title(text string) {
	d.pdf.SetFont(d.family, "B", 20)
	d.pdf.MultiCell(0, 10, d.tr(text), "", "C", false)
	d.pdf.Ln(10)
}

func (d *pdfDoc) heading(text string) {
	d.pdf.SetFont(d.family, "B", 16)
	d.pdf.MultiCell(0, 8, d.tr(text), "", "L", false)
	d.pdf.Ln(2)
}

func (d *pdfDoc) subheading(text string) {
	d.pdf.Ln(2)
	d.pdf.SetFont(d.family, "I", 14)
	d.pdf.MultiCell(0, 7, d.tr(text), "", "L", false)
	d.pdf.Ln(1)
}

func (d *pdfDoc) text(text string, indent float64) {
	d.pdf.SetFont(d.family, "", 12)
	d.writeIndented(text, indent)
}

// bullet writes a bulleted line; depth 1 bullets sit one indent level
// deeper than section bullets.
func (d *pdfDoc) bullet(text string, depth int) {
	marker := "• "
	indent := 6.0
	if depth > 0 {
		marker = "– "
		indent = 12.0
	}
	d.pdf.SetFont(d.family, "", 12)
	d.writeIndented(marker+text, indent)
}

func (d *pdfDoc) writeIndented(text string, indent float64) {
	left, _, _, _ := d.pdf.GetMargins()
	d.pdf.SetLeftMargin(left + indent)
	d.pdf.SetX(left + indent)
	d.pdf.MultiCell(0, 6, d.tr(text), "", "L", false)
	d.pdf.SetLeftMargin(left)
}
