package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/matricula-api/internal/models"
	"github.com/noah-isme/matricula-api/internal/service"
)

func TestWriteRecords(t *testing.T) {
	name := "ANA"
	buf := &bytes.Buffer{}
	writeRecords(buf, []models.EnrollmentRecord{{Codigo: "100", Year: 2024, Nombres: &name}})

	out := buf.String()
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "ANA")
	assert.Contains(t, out, "N/A-N/A-N/A")
}

func TestWriteCensusMarksCurrentYear(t *testing.T) {
	buf := &bytes.Buffer{}
	writeCensus(buf, []models.YearCount{{Year: 2023, Total: 10}, {Year: 2024, Total: 7}}, 2024)

	assert.Contains(t, buf.String(), "2024 *")
	assert.NotContains(t, buf.String(), "2023 *")
}

func TestSampleRecordRenders(t *testing.T) {
	svc := service.NewRegistrationService(nil, nil, nil, nil, service.RegistrationConfig{})
	content, err := svc.RenderRecords([]models.EnrollmentRecord{sampleRecord()})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "muestra.pdf")
	buf := &bytes.Buffer{}
	require.NoError(t, writeDocument(buf, path, content, 1))
	assert.Contains(t, buf.String(), "muestra.pdf")

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(written, []byte("%PDF-")))
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd(&app{})
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"buscar", "pdf", "consolidado", "anios", "muestra"}, names)
}

func TestPick(t *testing.T) {
	assert.Equal(t, "a.pdf", pick("a.pdf", "b.pdf"))
	assert.Equal(t, "b.pdf", pick("", "b.pdf"))
}
