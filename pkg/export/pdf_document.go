package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

var (
	// ErrEmptyDocument is returned when output is requested before any page exists.
	ErrEmptyDocument = errors.New("document has no pages")
	// ErrImage marks an image asset gofpdf could not load.
	ErrImage = errors.New("image asset unreadable")
)

// PageSetup describes paper, orientation and margins in millimetres.
type PageSetup struct {
	Size         string
	Orientation  string
	MarginLeft   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	FontFamily   string
}

// LegalPortrait is the 215.9 x 355.6 mm page used by the registration form.
var LegalPortrait = PageSetup{
	Size:         "Legal",
	Orientation:  "P",
	MarginLeft:   8,
	MarginTop:    8,
	MarginRight:  8,
	MarginBottom: 13,
	FontFamily:   "Helvetica",
}

// Metadata is written into the PDF information dictionary.
type Metadata struct {
	Title   string
	Author  string
	Creator string
}

// PDFDocument replays draw ops onto an in-memory gofpdf document.
// A document is owned by a single render and is not safe for concurrent use.
type PDFDocument struct {
	pdf   *gofpdf.Fpdf
	setup PageSetup
	tr    func(string) string
}

// NewPDFDocument prepares an empty document; a zero setup means LegalPortrait.
// Automatic page breaks are disabled: every AddPage call yields exactly one
// page and overflowing content is clipped.
func NewPDFDocument(setup PageSetup, meta Metadata) *PDFDocument {
	if setup.Size == "" {
		setup = LegalPortrait
	}
	if setup.FontFamily == "" {
		setup.FontFamily = "Helvetica"
	}
	pdf := gofpdf.New(setup.Orientation, "mm", setup.Size, "")
	pdf.SetMargins(setup.MarginLeft, setup.MarginTop, setup.MarginRight)
	pdf.SetAutoPageBreak(false, setup.MarginBottom)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetCreator(meta.Creator, true)

	return &PDFDocument{
		pdf:   pdf,
		setup: setup,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// RegisterImages loads every image up front so a broken asset fails the
// render before the first page is drawn.
func (d *PDFDocument) RegisterImages(paths ...string) error {
	for _, path := range paths {
		d.pdf.RegisterImageOptions(path, gofpdf.ImageOptions{ReadDpi: false})
		if d.pdf.Err() {
			return fmt.Errorf("%w: %s: %v", ErrImage, path, d.pdf.Error())
		}
	}
	return nil
}

// LineCount reports how many lines MultiCell will produce for text at the given
// font size when wrapped to width.
func (d *PDFDocument) LineCount(text string, width, size float64) int {
	d.pdf.SetFont(d.setup.FontFamily, "", size)
	text = strings.TrimRight(strings.ReplaceAll(text, "\r", ""), "\n")
	lines := d.pdf.SplitLines([]byte(d.tr(text)), width)
	if len(lines) < 1 {
		return 1
	}
	return len(lines)
}

// AddPage appends a page and draws ops onto it in order.
func (d *PDFDocument) AddPage(ops []Op) error {
	d.pdf.AddPage()
	for _, op := range ops {
		d.draw(op)
	}
	if d.pdf.Err() {
		return fmt.Errorf("draw page %d: %w", d.pdf.PageNo(), d.pdf.Error())
	}
	return nil
}

// PageCount returns the number of pages added so far.
func (d *PDFDocument) PageCount() int {
	return d.pdf.PageCount()
}

// Bytes closes the document and returns its encoded form. Nothing is returned
// when any earlier draw failed.
func (d *PDFDocument) Bytes() ([]byte, error) {
	if d.pdf.PageCount() == 0 {
		return nil, ErrEmptyDocument
	}
	buf := &bytes.Buffer{}
	if err := d.pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *PDFDocument) draw(op Op) {
	switch op.Kind {
	case OpText:
		d.setFont(op.Bold, op.Size)
		d.pdf.SetXY(op.X, op.Y)
		d.pdf.CellFormat(op.W, op.H, d.tr(op.Content), "", 0, string(op.Align), false, 0, "")
	case OpMultiline:
		d.setFont(op.Bold, op.Size)
		d.pdf.SetXY(op.X, op.Y)
		d.pdf.MultiCell(op.W, op.LineHeight, d.tr(op.Content), "", string(op.Align), false)
	case OpRect:
		d.pdf.Rect(op.X, op.Y, op.W, op.H, "D")
	case OpLine:
		d.pdf.Line(op.X, op.Y, op.X2, op.Y2)
	case OpImage:
		d.pdf.ImageOptions(op.Path, op.X, op.Y, op.W, op.H, false, gofpdf.ImageOptions{ReadDpi: false}, 0, "")
	}
}

func (d *PDFDocument) setFont(bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont(d.setup.FontFamily, style, size)
}
