package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/noah-isme/matricula-api/internal/models"
	"github.com/noah-isme/matricula-api/pkg/export"
)

// ErrNoRecords is returned when a batch has nothing to render.
var ErrNoRecords = errors.New("layout: no records to render")

// Measurer reports how many lines text wraps to at the given width and font
// size. *export.PDFDocument satisfies it.
type Measurer interface {
	LineCount(text string, width, size float64) int
}

type newlineMeasurer struct{}

func (newlineMeasurer) LineCount(text string, _, _ float64) int {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r", ""), "\n")
	return strings.Count(text, "\n") + 1
}

// Page is the op list of one rendered record.
type Page struct {
	Index int
	Code  string
	Ops   []export.Op
}

type builder struct {
	measure Measurer
	ops     []export.Op
}

func (b *builder) add(ops ...export.Op) {
	b.ops = append(b.ops, ops...)
}

func yearText(year int) string {
	if year == 0 {
		return models.Placeholder
	}
	return strconv.Itoa(year)
}

// header draws the three-column form header and returns the y below it.
func (b *builder) header(index int, code string, assets Assets) float64 {
	top := MarginTop
	textX := MarginLeft + emblemColumnWidth
	metaX := textX + textColumnWidth
	subY := top + headerRowHeight

	if assets.Emblem != "" {
		b.add(export.Image(assets.Emblem, MarginLeft+(emblemColumnWidth-emblemWidth)/2, top+2, emblemWidth, emblemHeight))
	}

	b.add(
		export.Text(textX, top+1, textColumnWidth, 4, formAuthority, export.AlignCenter, true, 7.5),
		export.Text(textX, top+5, textColumnWidth, 4.5, formInstitution, export.AlignCenter, true, 9),
		export.Text(textX, top+9.5, textColumnWidth, 3.5, formRegistry, export.AlignCenter, false, 7),
		export.Multiline(textX, top+13, textColumnWidth, 2.8, formLegalNote, export.AlignJustify, 5.5),
	)

	meta := []string{
		"Pagina: " + strconv.Itoa(index),
		"Codigo: " + code,
		formCode,
		formVersion,
		formIssued,
	}
	for i, line := range meta {
		b.add(export.Text(metaX, top+2+float64(i)*metaLineHeight, metaColumnWidth, metaLineHeight, line, export.AlignCenter, false, 7))
	}

	b.add(
		export.Text(textX, subY, textColumnWidth, headerSubRowHeight, formTitle, export.AlignCenter, true, 8),
		export.Text(metaX, subY, metaColumnWidth, headerSubRowHeight/2, formDependency, export.AlignCenter, true, 7),
		export.Text(metaX, subY+headerSubRowHeight/2, metaColumnWidth, headerSubRowHeight/2, formOffice, export.AlignCenter, true, 7),
	)

	bottom := top + headerHeight
	b.add(
		export.Rect(MarginLeft, top, InnerWidth, headerHeight),
		export.Line(MarginLeft, subY, MarginLeft+InnerWidth, subY),
		export.Line(textX, top, textX, bottom),
		export.Line(metaX, top, metaX, bottom),
	)
	return bottom + headerGap
}

// RenderPage lays out one record as page index (1-based). A nil measurer
// counts explicit newlines only.
func RenderPage(rec models.EnrollmentRecord, index int, measure Measurer, assets Assets) Page {
	if measure == nil {
		measure = newlineMeasurer{}
	}
	b := &builder{measure: measure, ops: make([]export.Op, 0, 256)}

	y := b.header(index, rec.Codigo, assets)
	y = b.sections(y, rec)
	y = b.signatures(y+signatureGap, assets)
	b.footer(y)

	return Page{Index: index, Code: rec.Codigo, Ops: b.ops}
}

// BuildPages lays out one page per record, in order.
func BuildPages(records []models.EnrollmentRecord, measure Measurer, assets Assets) ([]Page, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	pages := make([]Page, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Codigo) == "" {
			return nil, fmt.Errorf("layout: record %d has no code", i+1)
		}
		pages = append(pages, RenderPage(rec, i+1, measure, assets))
	}
	return pages, nil
}
