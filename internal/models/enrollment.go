package models

import (
	"strconv"
	"strings"
)

// Placeholder is rendered for every absent or blank field.
const Placeholder = "N/A"

// EnrollmentRecord is one student's enrollment snapshot for one year, as stored
// in the estugrupos table joined with the site name. JSON names follow the
// legacy column names consumed by the front-end.
type EnrollmentRecord struct {
	Codigo string `db:"codigo" json:"codigo"`
	Year   int    `db:"year" json:"year"`

	Estudiante      *string `db:"estudiante" json:"estudiante"`
	Nombres         *string `db:"nombres" json:"nombres"`
	Genero          *string `db:"genero" json:"genero"`
	TipoSangre      *string `db:"tiposangre" json:"tipoSangre"`
	EmailEstudiante *string `db:"email_estudiante" json:"email_estudiante"`
	FecNac          *string `db:"fecnac" json:"fecnac"`
	Edad            *int    `db:"edad" json:"edad"`
	LugarNacimiento *string `db:"lugarnacimiento" json:"lugarNacimiento"`
	TDEI            *string `db:"tdei" json:"tdei"`
	FechaExpedicion *string `db:"fechaexpedicion" json:"fechaExpedicion"`
	LugarExpedicion *string `db:"lugarexpedicion" json:"lugarExpedicion"`

	Telefono1 *string `db:"telefono1" json:"telefono1"`
	Telefono2 *string `db:"telefono2" json:"telefono2"`
	Direccion *string `db:"direccion" json:"direccion"`
	Lugar     *string `db:"lugar" json:"lugar"`
	Sisben    *string `db:"sisben" json:"sisben"`
	Estrato   *string `db:"estrato" json:"estrato"`
	EPS       *string `db:"eps" json:"eps"`
	Activo    *string `db:"activo" json:"activo"`

	Banda     *string `db:"banda" json:"banda"`
	Desertor  *string `db:"desertor" json:"desertor"`
	EAnterior *string `db:"eanterior" json:"eanterior"`
	Estado    *string `db:"estado" json:"estado"`

	Asignacion         *string `db:"asignacion" json:"asignacion"`
	Nivel              *string `db:"nivel" json:"nivel"`
	Numero             *string `db:"numero" json:"numero"`
	Sede               *string `db:"sede" json:"sede"`
	InstitucionExterna *string `db:"institucion_externa" json:"institucion_externa"`
	OtraInformacion    *string `db:"otrainformacion" json:"otraInformacion"`

	Padre             *string `db:"padre" json:"padre"`
	PadreID           *string `db:"padreid" json:"padreid"`
	OcupacionPadre    *string `db:"ocupacionpadre" json:"ocupacionpadre"`
	TelefonoPadre     *string `db:"telefonopadre" json:"telefonopadre"`
	Madre             *string `db:"madre" json:"madre"`
	MadreID           *string `db:"madreid" json:"madreid"`
	OcupacionMadre    *string `db:"ocupacionmadre" json:"ocupacionmadre"`
	TelefonoMadre     *string `db:"telefonomadre" json:"telefonomadre"`
	Acudiente         *string `db:"acudiente" json:"acudiente"`
	IDAcudiente       *string `db:"idacudiente" json:"idacudiente"`
	Parentesco        *string `db:"parentesco" json:"parentesco"`
	TelefonoAcudiente *string `db:"telefono_acudiente" json:"telefono_acudiente"`

	VictimaConflicto    *string `db:"victimaconflicto" json:"victimaConflicto"`
	LugarDesplazamiento *string `db:"lugardesplazamiento" json:"lugarDesplazamiento"`
	FechaDesplazamiento *string `db:"fechadesplazamiento" json:"fechaDesplazamiento"`
	HED                 *string `db:"hed" json:"HED"`
	Etnia               *string `db:"etnia" json:"etnia"`
	Discapacidad        *string `db:"discapacidad" json:"discapacidad"`
}

// Site maps an assignment code to its campus name.
type Site struct {
	Ind  string `db:"ind" json:"ind"`
	Sede string `db:"sede" json:"sede"`
}

// YearCount is the number of enrollment rows stored for a year.
type YearCount struct {
	Year  int `db:"year" json:"year"`
	Total int `db:"total" json:"total"`
}

// Display returns the trimmed value or Placeholder when it is absent or blank.
func Display(v *string) string {
	if v == nil {
		return Placeholder
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return Placeholder
	}
	return s
}

// DisplayInt formats an optional number, falling back to Placeholder.
func DisplayInt(v *int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.Itoa(*v)
}

// HasText reports whether v holds non-blank text.
func HasText(v *string) bool {
	return v != nil && strings.TrimSpace(*v) != ""
}
