package layout

import "github.com/noah-isme/matricula-api/pkg/export"

// RowLayout fixes the column widths of a labeled-field row. The last value
// column takes whatever inner width remains.
type RowLayout struct {
	LabelWidth       float64
	ValueWidth       float64
	SecondLabelWidth float64
	SecondValueWidth float64
	Height           float64
	FontSize         float64
}

func newRowLayout(label, value, secondLabel float64) RowLayout {
	return RowLayout{
		LabelWidth:       label,
		ValueWidth:       value,
		SecondLabelWidth: secondLabel,
		SecondValueWidth: InnerWidth - label - value - secondLabel,
		Height:           rowHeight,
		FontSize:         rowFontSize,
	}
}

var (
	// GeneralRows is used by every section except guardians.
	GeneralRows = newRowLayout(38, 60, 38)
	// GuardianRows leaves room for the longer guardian labels.
	GuardianRows = newRowLayout(38, 58, 44)
)

// Field is a label and its display value.
type Field struct {
	Label string
	Value string
}

// Row holds one or two fields. A row without Right spans the value across the
// rest of the line.
type Row struct {
	Left  Field
	Right *Field
}

func pair(l1, v1, l2, v2 string) Row {
	return Row{Left: Field{Label: l1, Value: v1}, Right: &Field{Label: l2, Value: v2}}
}

func single(l, v string) Row {
	return Row{Left: Field{Label: l, Value: v}}
}

// Cells returns the text ops of row placed at (x, y).
func (l RowLayout) Cells(x, y float64, row Row) []export.Op {
	label := func(x, w float64, s string) export.Op {
		return export.Text(x, y, w, l.Height, s, export.AlignLeft, true, l.FontSize)
	}
	value := func(x, w float64, s string) export.Op {
		return export.Text(x, y, w, l.Height, s, export.AlignLeft, false, l.FontSize)
	}

	if row.Right == nil {
		return []export.Op{
			label(x, l.LabelWidth, row.Left.Label),
			value(x+l.LabelWidth, InnerWidth-l.LabelWidth, row.Left.Value),
		}
	}

	x2 := x + l.LabelWidth + l.ValueWidth
	return []export.Op{
		label(x, l.LabelWidth, row.Left.Label),
		value(x+l.LabelWidth, l.ValueWidth, row.Left.Value),
		label(x2, l.SecondLabelWidth, row.Right.Label),
		value(x2+l.SecondLabelWidth, l.SecondValueWidth, row.Right.Value),
	}
}
