package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/matricula-api/internal/models"
)

func newEnrollmentMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

var recordColumns = []string{"codigo", "year", "estudiante", "nombres", "asignacion", "nivel", "numero", "edad", "sede"}

func TestEnrollmentRepositorySearchGroup(t *testing.T) {
	db, mock, cleanup := newEnrollmentMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	rows := sqlmock.NewRows(recordColumns).
		AddRow("100", 2024, "1001", "ANA GOMEZ", "5", "11", "02", 16, "SEDE CENTRAL").
		AddRow("101", 2024, "1002", "LUIS PEREZ", "5", "11", "02", nil, nil)
	mock.ExpectQuery(`INNER JOIN \(SELECT codigo, MAX\(year\) AS max_year FROM estugrupos GROUP BY codigo\) ultimos` +
		`[\s\S]+` + regexp.QuoteMeta("WHERE eg.year = $1 AND eg.asignacion = $2 AND eg.nivel = $3 AND eg.numero = $4") +
		`\s+ORDER BY eg.nombres, eg.codigo`).
		WithArgs(2024, "5", "11", "02").
		WillReturnRows(rows)

	records, err := repo.Search(context.Background(), models.ParseCriterion("5-11-02"), 2024)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "100", records[0].Codigo)
	assert.Equal(t, "SEDE CENTRAL", *records[0].Sede)
	assert.Equal(t, 16, *records[0].Edad)
	assert.Nil(t, records[1].Sede)
	assert.Nil(t, records[1].Edad)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositorySearchLevel(t *testing.T) {
	db, mock, cleanup := newEnrollmentMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE eg.year = $1 AND eg.nivel = $2 AND eg.numero = $3")).
		WithArgs(2024, "11", "02").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	records, err := repo.Search(context.Background(), models.ParseCriterion("11-02"), 2024)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositorySearchText(t *testing.T) {
	db, mock, cleanup := newEnrollmentMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("(eg.codigo ILIKE $2 OR eg.estudiante ILIKE $2 OR eg.nombres ILIKE $2)")).
		WithArgs(2024, "%Juan Perez%").
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow("100", 2024, "1001", "JUAN PEREZ", "5", "11", "02", 15, "SEDE"))

	records, err := repo.Search(context.Background(), models.ParseCriterion("Juan Perez"), 2024)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "JUAN PEREZ", *records[0].Nombres)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositorySearchEscapesWildcards(t *testing.T) {
	db, mock, cleanup := newEnrollmentMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery("ILIKE").
		WithArgs(2024, `%100\%\_%`).
		WillReturnRows(sqlmock.NewRows(recordColumns))

	_, err := repo.Search(context.Background(), models.ParseCriterion("100%_"), 2024)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositorySearchError(t *testing.T) {
	db, mock, cleanup := newEnrollmentMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.Search(context.Background(), models.ParseCriterion("Juan"), 2024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search enrollments")
}

func TestEnrollmentRepositoryFindOneReturnsLatestYear(t *testing.T) {
	db, mock, cleanup := newEnrollmentMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE eg.codigo = $1 OR eg.estudiante = $1") +
		`\s+` + regexp.QuoteMeta("ORDER BY eg.year DESC, eg.codigo ASC") + `\s+LIMIT 1`).
		WithArgs("100").
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow("100", 2024, "1001", "ANA", "5", "11", "02", 16, "SEDE"))

	record, err := repo.FindOneByCodeOrID(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, 2024, record.Year)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryFindOneNotFound(t *testing.T) {
	db, mock, cleanup := newEnrollmentMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery("WHERE eg.codigo").WithArgs("999").WillReturnRows(sqlmock.NewRows(recordColumns))

	_, err := repo.FindOneByCodeOrID(context.Background(), "999")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestEnrollmentRepositoryFindManyKeepsRequestOrder(t *testing.T) {
	db, mock, cleanup := newEnrollmentMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT ON (eg.codigo)") + `[\s\S]+` +
		regexp.QuoteMeta("WHERE eg.codigo = ANY($1)") + `\s+` + regexp.QuoteMeta("ORDER BY eg.codigo, eg.year DESC")).
		WithArgs(pq.Array([]string{"300", "100", "200"})).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("100", 2024, "1", "A", "5", "11", "01", 15, "S").
			AddRow("300", 2023, "3", "C", "5", "11", "01", 15, "S"))

	records, err := repo.FindManyByCodes(context.Background(), []string{"300", " 100 ", "300", "", "200"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "300", records[0].Codigo)
	assert.Equal(t, "100", records[1].Codigo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryFindManyEmptyInput(t *testing.T) {
	db, mock, cleanup := newEnrollmentMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	records, err := repo.FindManyByCodes(context.Background(), []string{" ", ""})
	require.NoError(t, err)
	assert.Nil(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryYearCensus(t *testing.T) {
	db, mock, cleanup := newEnrollmentMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT year, COUNT(*) AS total FROM estugrupos GROUP BY year ORDER BY year DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"year", "total"}).AddRow(2024, 812).AddRow(2023, 790))

	counts, err := repo.YearCensus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.YearCount{{Year: 2024, Total: 812}, {Year: 2023, Total: 790}}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
