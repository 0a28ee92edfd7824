package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/matricula-api/internal/models"
	"github.com/noah-isme/matricula-api/pkg/export"
)

type fixedMeasurer struct{ lines int }

func (m fixedMeasurer) LineCount(string, float64, float64) int { return m.lines }

func strPtr(s string) *string { return &s }

func sampleRecord(code string) models.EnrollmentRecord {
	return models.EnrollmentRecord{
		Codigo:         code,
		Year:           2024,
		Nombres:        strPtr("ANA MARIA LOPEZ"),
		Estudiante:     strPtr("1002003004"),
		OcupacionPadre: strPtr("OFICIOS_VARIOS"),
		EPS:            strPtr("SALUD TOTAL"),
		Activo:         strPtr("SI"),
	}
}

func texts(ops []export.Op) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		if op.Kind == export.OpText {
			out = append(out, op.Content)
		}
	}
	return out
}

func countKind(ops []export.Op, kind export.OpKind) int {
	n := 0
	for _, op := range ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestRenderPageSectionOrder(t *testing.T) {
	page := RenderPage(sampleRecord("A1"), 1, nil, Assets{})
	got := texts(page.Ops)

	titles := []string{TitleStudent, TitleAcademic, TitleGuardians, TitleReferential}
	last := -1
	for _, title := range titles {
		idx := indexOf(got, title)
		require.NotEqual(t, -1, idx, title)
		assert.Greater(t, idx, last, title)
		last = idx
	}
	assert.Equal(t, -1, indexOf(got, TitleExternal))
	assert.Equal(t, -1, indexOf(got, TitleOther))
	assert.Zero(t, countKind(page.Ops, export.OpImage))
}

func TestRenderPageFieldValues(t *testing.T) {
	page := RenderPage(sampleRecord("A1"), 1, nil, Assets{})
	got := texts(page.Ops)

	assert.Contains(t, got, "A1")
	assert.Contains(t, got, "2024")
	assert.Contains(t, got, "ANA MARIA LOPEZ")
	assert.Contains(t, got, "OFICIOS VARIOS")
	assert.Contains(t, got, "SALUD TOTAL - Activo:")
	assert.Contains(t, got, models.Placeholder)
	assert.Contains(t, got, "Pagina: 1")
	assert.Contains(t, got, "Codigo: A1")

	idx := indexOf(got, "Tipo de sangre:")
	require.NotEqual(t, -1, idx)
	assert.Equal(t, models.Placeholder, got[idx+1])
}

func TestRenderPageOptionalBlocks(t *testing.T) {
	rec := sampleRecord("A1")
	plain := RenderPage(rec, 1, nil, Assets{})

	rec.InstitucionExterna = strPtr("COLEGIO SAN JOSE")
	rec.OtraInformacion = strPtr("   ")
	withExternal := RenderPage(rec, 1, fixedMeasurer{lines: 3}, Assets{})

	got := texts(withExternal.Ops)
	assert.Greater(t, indexOf(got, TitleExternal), indexOf(got, TitleAcademic))
	assert.Less(t, indexOf(got, TitleExternal), indexOf(got, TitleGuardians))
	assert.Equal(t, -1, indexOf(got, TitleOther))
	assert.Equal(t, countKind(plain.Ops, export.OpRect)+1, countKind(withExternal.Ops, export.OpRect))
	assert.Equal(t, countKind(plain.Ops, export.OpMultiline)+1, countKind(withExternal.Ops, export.OpMultiline))

	var block export.Op
	for _, op := range withExternal.Ops {
		if op.Kind == export.OpMultiline && op.Content == "COLEGIO SAN JOSE" {
			block = op
		}
	}
	assert.Equal(t, export.AlignLeft, block.Align)
	assert.Equal(t, InnerWidth, block.W)
}

func TestRenderPageTallBlockPushesSectionsDown(t *testing.T) {
	rec := sampleRecord("A1")
	rec.OtraInformacion = strPtr("nota")

	short := RenderPage(rec, 1, fixedMeasurer{lines: 1}, Assets{})
	tall := RenderPage(rec, 1, fixedMeasurer{lines: 5}, Assets{})

	find := func(ops []export.Op, s string) export.Op {
		for _, op := range ops {
			if op.Content == s {
				return op
			}
		}
		return export.Op{}
	}
	delta := find(tall.Ops, TitleGuardians).Y - find(short.Ops, TitleGuardians).Y
	assert.InDelta(t, 4*blockLineHeight, delta, 0.0001)
}

func TestRenderPageImages(t *testing.T) {
	assets := Assets{Emblem: "/a/escudo.jpg", IDCode: "/a/qrcode.jpg", Principal: "/a/rector.jpg"}
	page := RenderPage(sampleRecord("A1"), 1, nil, assets)

	var paths []string
	for _, op := range page.Ops {
		if op.Kind == export.OpImage {
			paths = append(paths, op.Path)
		}
	}
	assert.Equal(t, []string{"/a/escudo.jpg", "/a/qrcode.jpg", "/a/rector.jpg"}, paths)

	partial := RenderPage(sampleRecord("A1"), 1, nil, Assets{IDCode: "/a/qrcode.jpg"})
	assert.Equal(t, 1, countKind(partial.Ops, export.OpImage))
}

func TestRenderPageStaysInsidePage(t *testing.T) {
	page := RenderPage(sampleRecord("A1"), 1, nil, Assets{})
	for _, op := range page.Ops {
		assert.GreaterOrEqual(t, op.X, MarginLeft)
		assert.LessOrEqual(t, op.X+op.W, PageWidth-MarginRight+0.0001)
		assert.Less(t, op.Y, PageHeight-MarginBottom, op.Content)
	}
}

func TestBuildPages(t *testing.T) {
	records := []models.EnrollmentRecord{sampleRecord("C3"), sampleRecord("A1"), sampleRecord("B2")}
	pages, err := BuildPages(records, nil, Assets{})
	require.NoError(t, err)
	require.Len(t, pages, 3)

	for i, code := range []string{"C3", "A1", "B2"} {
		assert.Equal(t, i+1, pages[i].Index)
		assert.Equal(t, code, pages[i].Code)
		got := texts(pages[i].Ops)
		assert.Contains(t, got, "Codigo: "+code)
		assert.Contains(t, got, "Pagina: "+string(rune('1'+i)))
	}
}

func TestBuildPagesErrors(t *testing.T) {
	_, err := BuildPages(nil, nil, Assets{})
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = BuildPages([]models.EnrollmentRecord{{Codigo: "  "}}, nil, Assets{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no code"))
}

func TestNewlineMeasurer(t *testing.T) {
	m := newlineMeasurer{}
	assert.Equal(t, 1, m.LineCount("", 10, 6))
	assert.Equal(t, 2, m.LineCount("a\r\nb\n", 10, 6))
}

func TestAssetsPaths(t *testing.T) {
	assert.Empty(t, Assets{}.Paths())
	assert.Equal(t, []string{"e", "p"}, Assets{Emblem: "e", Principal: "p"}.Paths())
}
