// Package layout places an enrollment record onto the legal-size
// "REGISTRO DE MATRICULA" form as an ordered list of draw ops.
package layout

import "github.com/noah-isme/matricula-api/pkg/export"

// Page geometry in millimetres.
const (
	PageWidth    = 215.9
	PageHeight   = 355.6
	MarginLeft   = 8.0
	MarginRight  = 8.0
	MarginTop    = 8.0
	MarginBottom = 13.0
	InnerWidth   = PageWidth - MarginLeft - MarginRight
)

// Header band.
const (
	headerRowHeight    = 30.0
	headerSubRowHeight = 6.0
	headerHeight       = headerRowHeight + headerSubRowHeight
	emblemColumnWidth  = 28.0
	metaColumnWidth    = 32.0
	textColumnWidth    = InnerWidth - emblemColumnWidth - metaColumnWidth
	emblemWidth        = 22.0
	emblemHeight       = 26.0
	metaLineHeight     = 3.5
	headerGap          = 3.0
)

// Sections.
const (
	titleHeight     = 6.0
	titleGap        = 0.5
	titleFontSize   = 11.0
	rowHeight       = 3.5
	rowFontSize     = 7.0
	boxPadding      = 0.5
	sectionGap      = 2.0
	blockFontSize   = 6.0
	blockLineHeight = 2.5
	signatureGap    = 5.0
)

// Signature block and footer.
const (
	signatureLeadIn     = 2.0
	signatureSpace      = 18.0
	signatureLabelBand  = 8.0
	disclaimerBand      = 18.0
	signatureLineHeight = 4.0
	signatureFontSize   = 8.0
	labelOffset         = 5.0
	idCodeSize          = 22.0
	principalWidth      = 30.0
	principalHeight     = 16.0
	disclaimerFontSize  = 5.5
	footerLineHeight    = 4.0
	footerFontSize      = 7.5
	signatureRule       = "_______________________"
)

// Fixed form texts.
const (
	formAuthority   = "SECRETARIA DE EDUCACION DEL DEPARTAMENTO DE CALDAS"
	formInstitution = "INSTITUCION EDUCATIVA DE OCCIDENTE"
	formRegistry    = "NIT 890802641-2  DANE 117042000561"
	formLegalNote   = "INSTITUCION EDUCATIVA DE OCCIDENTE DE ANSERMA CALDAS PLANTEL OFICIAL APROBADO POR RESOLUCION No\n" +
		"4859-6 DE JUNIO 23 DE 2017, RESOLUCION DE FUSION No 00507 DE MARZO 6 DE 2003 EMANADA DE LA SECRETARIA\n" +
		"DE EDUCACION DEPARTAMENTAL Y SEGUN PLAN DE ESTUDIOS LEY 115 Y DECRETO 1860."
	formTitle      = "REGISTRO DE MATRICULA (SIMAT - EDUADMIN)"
	formDependency = "DEPENDENCIA"
	formOffice     = "SECRETARIA"
	formCode       = "GAFMIR-40-02"
	formVersion    = "v.02"
	formIssued     = "26/01/2012"

	guardianDisclaimer = "Manifiesto que he sido informado como acudiente y me comprometo a\n" +
		"acceder y descargar el Manual de Convivencia vigente a traves\n" +
		"del siguiente enlace en la pagina oficial de la institucion educativa:\n" +
		"https://iedeoccidente.edu.co/documentos/manual_de_convivencia_ieo.pdf\n" +
		"o el QR dado en la parte inferior"

	footerContact = "TELEFONOS: SECRETARIA 314 661 03 44  e-mail iedeoccidente@sedcaldas.gov.co"
	footerAddress = "Cr 5 11-19 ANSERMA CALDAS"
)

// Section titles, in page order.
const (
	TitleStudent     = "Informacion del Estudiante"
	TitleAcademic    = "Informacion Academica"
	TitleExternal    = "Institucion Externa"
	TitleOther       = "Otra Informacion"
	TitleGuardians   = "Padres y Acudientes"
	TitleReferential = "Informacion Referencial"
)

// PageSetup is the document sink configuration matching the constants above.
var PageSetup = export.PageSetup{
	Size:         "Legal",
	Orientation:  "P",
	MarginLeft:   MarginLeft,
	MarginTop:    MarginTop,
	MarginRight:  MarginRight,
	MarginBottom: MarginBottom,
	FontFamily:   "Helvetica",
}

// Assets holds absolute paths of the optional template images. An empty path
// means the image is absent and is not drawn.
type Assets struct {
	Emblem    string
	IDCode    string
	Principal string
}

// Paths lists the images that are present.
func (a Assets) Paths() []string {
	paths := make([]string, 0, 3)
	for _, p := range []string{a.Emblem, a.IDCode, a.Principal} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
