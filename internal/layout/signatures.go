package layout

import "github.com/noah-isme/matricula-api/pkg/export"

const signatureColumn = InnerWidth / 3

// signatures draws the student, guardian and principal signature block and
// returns the y where the footer starts.
func (b *builder) signatures(y float64, assets Assets) float64 {
	top := y + signatureLeadIn
	col := func(i int) float64 { return MarginLeft + float64(i)*signatureColumn }
	cell := func(i int, y float64, s string) export.Op {
		return export.Text(col(i), y, signatureColumn, signatureLineHeight, s, export.AlignCenter, false, signatureFontSize)
	}

	lineY := top + signatureSpace
	b.add(cell(0, lineY, signatureRule), cell(1, lineY, signatureRule))

	if assets.IDCode != "" {
		b.add(export.Image(assets.IDCode, col(2)+(signatureColumn-idCodeSize)/2, top, idCodeSize, idCodeSize))
	}

	labelY := lineY + labelOffset
	b.add(cell(0, labelY, "Estudiante"), cell(1, labelY, "Padre o Acudiente"))
	b.add(export.Multiline(col(1), labelY+labelOffset, signatureColumn, blockLineHeight, guardianDisclaimer, export.AlignJustify, disclaimerFontSize))

	principalY := top + signatureSpace + signatureLabelBand + disclaimerBand
	if assets.Principal != "" {
		b.add(export.Image(assets.Principal, col(0)+(signatureColumn-principalWidth)/2, principalY, principalWidth, principalHeight))
	}

	principalLineY := principalY + signatureSpace
	b.add(cell(0, principalLineY, signatureRule), cell(0, principalLineY+labelOffset, "Rector"))

	return principalLineY + labelOffset + signatureLineHeight + signatureLeadIn
}

// footer draws the boxed contact lines.
func (b *builder) footer(y float64) float64 {
	line := func(y float64, s string) export.Op {
		return export.Text(MarginLeft, y, InnerWidth, footerLineHeight, s, export.AlignCenter, false, footerFontSize)
	}
	b.add(line(y, footerContact), line(y+footerLineHeight, footerAddress))
	end := y + 2*footerLineHeight
	b.box(y, end)
	return end
}
