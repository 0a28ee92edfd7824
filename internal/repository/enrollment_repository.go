package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/matricula-api/internal/models"
)

const enrollmentColumns = `eg.codigo, eg.year, eg.estudiante, eg.nombres, eg.genero, eg.tiposangre, eg.email_estudiante,
        eg.fecnac, eg.edad, eg.lugarnacimiento, eg.tdei, eg.fechaexpedicion, eg.lugarexpedicion,
        eg.telefono1, eg.telefono2, eg.direccion, eg.lugar, eg.sisben, eg.estrato, eg.eps, eg.activo,
        eg.banda, eg.desertor, eg.eanterior, eg.estado,
        eg.asignacion, eg.nivel, eg.numero, eg.institucion_externa, eg.otrainformacion,
        eg.padre, eg.padreid, eg.ocupacionpadre, eg.telefonopadre, eg.madre, eg.madreid, eg.ocupacionmadre, eg.telefonomadre,
        eg.acudiente, eg.idacudiente, eg.parentesco, eg.telefono_acudiente,
        eg.victimaconflicto, eg.lugardesplazamiento, eg.fechadesplazamiento, eg.hed, eg.etnia, eg.discapacidad,
        s.sede`

const currentRowsFrom = `FROM estugrupos eg
        INNER JOIN (SELECT codigo, MAX(year) AS max_year FROM estugrupos GROUP BY codigo) ultimos
            ON eg.codigo = ultimos.codigo AND eg.year = ultimos.max_year
        LEFT JOIN sedes s ON eg.asignacion = s.ind`

// EnrollmentRepository reads enrollment snapshots. It never writes.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Search returns the current row of every student matching criterion whose
// latest year equals year, ordered by name.
func (r *EnrollmentRepository) Search(ctx context.Context, criterion models.SearchCriterion, year int) ([]models.EnrollmentRecord, error) {
	args := []interface{}{year}
	var condition string
	switch criterion.Kind {
	case models.CriterionGroup:
		condition = "eg.asignacion = $2 AND eg.nivel = $3 AND eg.numero = $4"
		args = append(args, criterion.Asignacion, criterion.Nivel, criterion.Numero)
	case models.CriterionLevel:
		condition = "eg.nivel = $2 AND eg.numero = $3"
		args = append(args, criterion.Nivel, criterion.Numero)
	default:
		condition = "(eg.codigo ILIKE $2 OR eg.estudiante ILIKE $2 OR eg.nombres ILIKE $2)"
		args = append(args, "%"+escapeLike(criterion.Term)+"%")
	}

	query := fmt.Sprintf(`SELECT %s
        %s
        WHERE eg.year = $1 AND %s
        ORDER BY eg.nombres, eg.codigo`, enrollmentColumns, currentRowsFrom, condition)

	var records []models.EnrollmentRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("search enrollments: %w", err)
	}
	return records, nil
}

// FindOneByCodeOrID returns the most recent row whose code or identifier equals
// code. Ties within a year resolve to the lowest code. Returns sql.ErrNoRows
// when nothing matches.
func (r *EnrollmentRepository) FindOneByCodeOrID(ctx context.Context, code string) (*models.EnrollmentRecord, error) {
	query := fmt.Sprintf(`SELECT %s
        FROM estugrupos eg
        LEFT JOIN sedes s ON eg.asignacion = s.ind
        WHERE eg.codigo = $1 OR eg.estudiante = $1
        ORDER BY eg.year DESC, eg.codigo ASC
        LIMIT 1`, enrollmentColumns)

	var record models.EnrollmentRecord
	if err := r.db.GetContext(ctx, &record, query, code); err != nil {
		return nil, err
	}
	return &record, nil
}

// FindManyByCodes returns the most recent row of each code, in the order the
// codes were given. Repeated codes appear once; unknown codes are skipped.
func (r *EnrollmentRepository) FindManyByCodes(ctx context.Context, codes []string) ([]models.EnrollmentRecord, error) {
	unique := dedupe(codes)
	if len(unique) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT DISTINCT ON (eg.codigo) %s
        FROM estugrupos eg
        LEFT JOIN sedes s ON eg.asignacion = s.ind
        WHERE eg.codigo = ANY($1)
        ORDER BY eg.codigo, eg.year DESC`, enrollmentColumns)

	var rows []models.EnrollmentRecord
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(unique)); err != nil {
		return nil, fmt.Errorf("find enrollments by codes: %w", err)
	}

	byCode := make(map[string]models.EnrollmentRecord, len(rows))
	for _, row := range rows {
		byCode[row.Codigo] = row
	}
	ordered := make([]models.EnrollmentRecord, 0, len(rows))
	for _, code := range unique {
		if row, ok := byCode[code]; ok {
			ordered = append(ordered, row)
		}
	}
	return ordered, nil
}

// YearCensus counts stored rows per year, newest first.
func (r *EnrollmentRepository) YearCensus(ctx context.Context) ([]models.YearCount, error) {
	const query = `SELECT year, COUNT(*) AS total FROM estugrupos GROUP BY year ORDER BY year DESC`
	var counts []models.YearCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("year census: %w", err)
	}
	return counts, nil
}

// Ping checks the store is reachable.
func (r *EnrollmentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func dedupe(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
