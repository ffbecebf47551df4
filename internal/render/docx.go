package render

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reqdoc/internal/types"
)

// The DOCX artifact is a minimal OOXML package built by hand: a zip archive
// holding the content-types manifest, the package relationships, the
// document part with its styles and bullet numbering, and a live TOC field
// that Word populates on open.

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
</Types>`

const docxPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>
</Relationships>`

// Heading run sizes are half-points, matching the document's visual
// hierarchy: title 28pt, heading 1 16pt, heading 2 13pt.
const docxStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/><w:pPr><w:spacing w:after="240"/></w:pPr><w:rPr><w:b/><w:sz w:val="56"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/><w:pPr><w:spacing w:after="240"/><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/><w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="1"/></w:pPr><w:rPr><w:b/><w:sz w:val="26"/></w:rPr></w:style>
</w:styles>`

const docxNumbering = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:abstractNum w:abstractNumId="0">
<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="&#8226;"/><w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>
<w:lvl w:ilvl="1"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="&#9702;"/><w:lvlJc w:val="left"/><w:pPr><w:ind w:left="1440" w:hanging="360"/></w:pPr></w:lvl>
</w:abstractNum>
<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
</w:numbering>`

const docxDocumentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`

const docxDocumentFooter = `<w:sectPr/></w:body></w:document>`

// WriteDOCX renders the document as <dir>/Requirements_v<version>.docx,
// creating the directory if missing, and returns the written path.
func WriteDOCX(doc *types.StructuredRequirements, dir string, version int) (string, error) {
	return writeDOCXFile(doc, dir, FileName(version, "docx"))
}

// WriteDOCXNamed renders the document under an explicit file name. Used by
// the minimal workflow mode, which keeps no version bookkeeping.
func WriteDOCXNamed(doc *types.StructuredRequirements, dir, fileName string) (string, error) {
	return writeDOCXFile(doc, dir, fileName)
}

func writeDOCXFile(doc *types.StructuredRequirements, dir, fileName string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &RenderError{Format: "docx", Message: "failed to create output directory", Cause: err}
	}

	path := filepath.Join(dir, fileName)
	out, err := os.Create(path)
	if err != nil {
		return "", &RenderError{Format: "docx", Message: "failed to create file", Cause: err}
	}

	archive := zip.NewWriter(out)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxPackageRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", docxStyles},
		{"word/numbering.xml", docxNumbering},
		{"word/document.xml", docxDocumentHeader + documentBody(doc) + docxDocumentFooter},
	}
	for _, part := range parts {
		w, err := archive.Create(part.name)
		if err == nil {
			_, err = w.Write([]byte(part.content))
		}
		if err != nil {
			_ = archive.Close()
			_ = out.Close()
			return "", &RenderError{Format: "docx", Message: "failed to write " + part.name, Cause: err}
		}
	}

	if err := archive.Close(); err != nil {
		_ = out.Close()
		return "", &RenderError{Format: "docx", Message: "failed to finalize archive", Cause: err}
	}
	if err := out.Close(); err != nil {
		return "", &RenderError{Format: "docx", Message: "failed to close file", Cause: err}
	}
	return path, nil
}

// documentBody emits the body paragraphs in the fixed rendering order.
func documentBody(doc *types.StructuredRequirements) string {
	var b strings.Builder

	styledParagraph(&b, "Title", titleOrDefault(doc.Title))

	// TOC label kept as a plain bold run so it does not list itself.
	boldParagraph(&b, "Table of Contents")
	tocField(&b)

	if len(doc.Figures) > 0 {
		styledParagraph(&b, "Heading1", headingFigures)
		for i, f := range doc.Figures {
			plainParagraph(&b, fmt.Sprintf("%d. %s", i+1, f.Caption))
		}
	}

	for _, section := range doc.Sections {
		styledParagraph(&b, "Heading1", section.Heading)
		for _, bullet := range section.Bullets {
			bulletParagraph(&b, 0, bullet)
		}
		for _, sub := range section.Subheadings {
			styledParagraph(&b, "Heading2", sub.Title)
			for _, bullet := range sub.Bullets {
				bulletParagraph(&b, 1, bullet)
			}
		}
	}

	styledParagraph(&b, "Heading1", headingAssumptions)
	for _, a := range doc.Assumptions {
		bulletParagraph(&b, 0, a)
	}

	styledParagraph(&b, "Heading1", headingOutOfScope)
	for _, o := range doc.OutOfScope {
		bulletParagraph(&b, 0, o)
	}

	return b.String()
}

func styledParagraph(b *strings.Builder, style, text string) {
	fmt.Fprintf(b, `<w:p><w:pPr><w:pStyle w:val="%s"/></w:pPr>%s</w:p>`, style, run(text))
}

func plainParagraph(b *strings.Builder, text string) {
	fmt.Fprintf(b, `<w:p>%s</w:p>`, run(text))
}

func boldParagraph(b *strings.Builder, text string) {
	fmt.Fprintf(b, `<w:p><w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, escapeXML(text))
}

func bulletParagraph(b *strings.Builder, level int, text string) {
	fmt.Fprintf(b,
		`<w:p><w:pPr><w:numPr><w:ilvl w:val="%d"/><w:numId w:val="1"/></w:numPr></w:pPr>%s</w:p>`,
		level, run(text))
}

func run(text string) string {
	return fmt.Sprintf(`<w:r><w:t xml:space="preserve">%s</w:t></w:r>`, escapeXML(text))
}

// tocField emits a live TOC field covering heading levels 1-3. Word marks
// the field dirty and recomputes entries when the document is opened.
func tocField(b *strings.Builder) {
	b.WriteString(`<w:p>`)
	b.WriteString(`<w:r><w:fldChar w:fldCharType="begin" w:dirty="true"/></w:r>`)
	b.WriteString(`<w:r><w:instrText xml:space="preserve"> TOC \o &quot;1-3&quot; \h \z \u </w:instrText></w:r>`)
	b.WriteString(`<w:r><w:fldChar w:fldCharType="separate"/></w:r>`)
	b.WriteString(`<w:r><w:t xml:space="preserve">Update this field to generate the table of contents.</w:t></w:r>`)
	b.WriteString(`<w:r><w:fldChar w:fldCharType="end"/></w:r>`)
	b.WriteString(`</w:p>`)
}
