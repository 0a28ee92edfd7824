package export

// OpKind identifies a draw primitive.
type OpKind int

const (
	OpText OpKind = iota + 1
	OpMultiline
	OpRect
	OpLine
	OpImage
)

func (k OpKind) String() string {
	switch k {
	case OpText:
		return "text"
	case OpMultiline:
		return "multiline"
	case OpRect:
		return "rect"
	case OpLine:
		return "line"
	case OpImage:
		return "image"
	default:
		return "unknown"
	}
}

// Align is a horizontal text alignment in gofpdf notation.
type Align string

const (
	AlignLeft    Align = "L"
	AlignCenter  Align = "C"
	AlignRight   Align = "R"
	AlignJustify Align = "J"
)

// Op is one draw instruction in page coordinates (millimetres).
// Line ops use X/Y as the start point and X2/Y2 as the end point.
type Op struct {
	Kind       OpKind
	X, Y       float64
	W, H       float64
	X2, Y2     float64
	Content    string
	Align      Align
	Bold       bool
	Size       float64
	LineHeight float64
	Path       string
}

// Text is a single-line cell of width w and height h.
func Text(x, y, w, h float64, content string, align Align, bold bool, size float64) Op {
	return Op{Kind: OpText, X: x, Y: y, W: w, H: h, Content: content, Align: align, Bold: bold, Size: size}
}

// Multiline is a block wrapped to width w, each line lineHeight tall.
func Multiline(x, y, w, lineHeight float64, content string, align Align, size float64) Op {
	return Op{Kind: OpMultiline, X: x, Y: y, W: w, LineHeight: lineHeight, Content: content, Align: align, Size: size}
}

// Rect outlines a rectangle.
func Rect(x, y, w, h float64) Op {
	return Op{Kind: OpRect, X: x, Y: y, W: w, H: h}
}

// Line strokes a segment from (x1, y1) to (x2, y2).
func Line(x1, y1, x2, y2 float64) Op {
	return Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2}
}

// Image places the image file at path scaled into the given box.
func Image(path string, x, y, w, h float64) Op {
	return Op{Kind: OpImage, Path: path, X: x, Y: y, W: w, H: h}
}
