package layout

import (
	"strings"

	"github.com/noah-isme/matricula-api/internal/models"
	"github.com/noah-isme/matricula-api/pkg/export"
)

var show = models.Display

func occupation(v *string) string {
	return strings.ReplaceAll(show(v), "_", " ")
}

func studentRows(r models.EnrollmentRecord) []Row {
	return []Row{
		pair("Código:", show(&r.Codigo), "Año:", yearText(r.Year)),
		pair("Identificacion:", show(r.Estudiante), "Tipo de sangre:", show(r.TipoSangre)),
		pair("Nombres:", show(r.Nombres), "Genero:", show(r.Genero)),
		pair("Email Estudiante:", show(r.EmailEstudiante), "Sede:", show(r.Sede)),
		pair("Fecha de Nacimiento:", show(r.FecNac), "Edad:", models.DisplayInt(r.Edad)),
		single("Lugar de Nacimiento:", show(r.LugarNacimiento)),
		pair("Tipo de Documento:", show(r.TDEI), "Fecha de Expedicion:", show(r.FechaExpedicion)),
		single("Lugar de Expedicion:", show(r.LugarExpedicion)),
	}
}

func contactRows(r models.EnrollmentRecord) []Row {
	return []Row{
		pair("Telefono 1:", show(r.Telefono1), "Telefono 2:", show(r.Telefono2)),
		pair("Direccion:", show(r.Direccion), "Zona y lugar:", show(r.Lugar)),
		pair("Nivel Sisben:", show(r.Sisben), "Estrato:", show(r.Estrato)),
		pair("RGSS:", show(r.EPS)+" - Activo:", "", show(r.Activo)),
		pair("Banda:", show(r.Banda), "Desertor:", show(r.Desertor)),
		pair("Estado anterior:", show(r.EAnterior), "Estado:", show(r.Estado)),
	}
}

func academicRows(r models.EnrollmentRecord) []Row {
	return []Row{
		pair("Asignacion:", show(r.Asignacion), "Nivel:", show(r.Nivel)),
		single("Numero:", show(r.Numero)),
		single("Sede Actual:", show(r.Sede)),
	}
}

func guardianRows(r models.EnrollmentRecord) []Row {
	return []Row{
		pair("Padre:", show(r.Padre), "Identificacion Padre:", show(r.PadreID)),
		pair("Ocupacion:", occupation(r.OcupacionPadre), "Telefono Padre:", show(r.TelefonoPadre)),
		pair("Madre:", show(r.Madre), "Identificacion Madre:", show(r.MadreID)),
		pair("Ocupacion:", occupation(r.OcupacionMadre), "Telefono Madre:", show(r.TelefonoMadre)),
		pair("Acudiente:", show(r.Acudiente), "Identificacion Acudiente:", show(r.IDAcudiente)),
		pair("Parentesco Acudiente:", show(r.Parentesco), "Telefono:", show(r.TelefonoAcudiente)),
	}
}

func referentialRows(r models.EnrollmentRecord) []Row {
	return []Row{
		pair("Victima de Conflicto:", show(r.VictimaConflicto), "Desplazado de:", show(r.LugarDesplazamiento)),
		pair("Fecha desplazamiento:", show(r.FechaDesplazamiento), "H.E.D.:", show(r.HED)),
		single("Etnia:", show(r.Etnia)),
		single("Discapacidad:", show(r.Discapacidad)),
	}
}

// title draws a centered section heading and returns the y below it.
func (b *builder) title(y float64, text string) float64 {
	b.add(export.Text(MarginLeft, y, InnerWidth, titleHeight, text, export.AlignCenter, true, titleFontSize))
	return y + titleHeight + titleGap
}

// rows draws rows from y and returns the y below the last one.
func (b *builder) rows(y float64, l RowLayout, rows []Row) float64 {
	for _, row := range rows {
		b.add(l.Cells(MarginLeft, y, row)...)
		y += l.Height
	}
	return y
}

// box outlines the band between start and end with padding on both edges.
func (b *builder) box(start, end float64) {
	b.add(export.Rect(MarginLeft, start-boxPadding, InnerWidth, end-start+2*boxPadding))
}

// table draws rows inside a box and returns the y where the next section starts.
func (b *builder) table(y float64, l RowLayout, rows []Row) float64 {
	end := b.rows(y, l, rows)
	b.box(y, end)
	return end
}

// block draws a titled free-text box, wrapped by the multiline primitive.
func (b *builder) block(y float64, title, text string) float64 {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r", ""), "\n")
	y = b.title(y, title)
	b.add(export.Multiline(MarginLeft, y, InnerWidth, blockLineHeight, text, export.AlignLeft, blockFontSize))
	end := y + float64(b.measure.LineCount(text, InnerWidth, blockFontSize))*blockLineHeight
	b.box(y, end)
	return end + sectionGap
}

// sections draws every record section from y and returns the y after the
// referential box.
func (b *builder) sections(y float64, r models.EnrollmentRecord) float64 {
	y = b.title(y, TitleStudent)
	y = b.table(y, GeneralRows, studentRows(r)) + sectionGap
	y = b.table(y, GeneralRows, contactRows(r)) + sectionGap

	y = b.title(y, TitleAcademic)
	y = b.table(y, GeneralRows, academicRows(r)) + sectionGap

	if models.HasText(r.InstitucionExterna) {
		y = b.block(y, TitleExternal, *r.InstitucionExterna)
	}
	if models.HasText(r.OtraInformacion) {
		y = b.block(y, TitleOther, *r.OtraInformacion)
	}

	y = b.title(y, TitleGuardians)
	y = b.table(y, GuardianRows, guardianRows(r)) + sectionGap

	y = b.title(y, TitleReferential)
	return b.table(y, GeneralRows, referentialRows(r))
}
