package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/noah-isme/matricula-api/internal/models"
	"github.com/noah-isme/matricula-api/internal/service"
)

func newSearchCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "buscar <criterio>",
		Short: "Search current-year enrollments by group, level or text",
		Example: "  matricula buscar 5-11-02\n" +
			"  matricula buscar 11-02\n" +
			"  matricula buscar lopez",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.enrollments(cmd.Context())
			if err != nil {
				return err
			}
			records, err := svc.Search(cmd.Context(), service.SearchRequest{Criterio: args[0]})
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			writeRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw records as JSON")
	return cmd
}

func newSingleCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "pdf <codigo>",
		Short: "Render the registration form of one student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.enrollments(cmd.Context())
			if err != nil {
				return err
			}
			svc, err := a.registration(records)
			if err != nil {
				return err
			}
			doc, err := svc.RenderSingle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), pick(output, doc.Filename), doc.Content, doc.Pages)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default Estudiante_<codigo>.pdf)")
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "consolidado <codigo>...",
		Short: "Render one consolidated document with a page per student",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.enrollments(cmd.Context())
			if err != nil {
				return err
			}
			svc, err := a.registration(records)
			if err != nil {
				return err
			}
			doc, err := svc.RenderBatch(cmd.Context(), args)
			if err != nil {
				return err
			}
			if doc.Pages < len(args) {
				fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("%d of %d codes had no enrollment", len(args)-doc.Pages, len(args)))
			}
			return writeDocument(cmd.OutOrStdout(), pick(output, doc.Filename), doc.Content, doc.Pages)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default Estudiantes_Consolidado_<timestamp>.pdf)")
	return cmd
}

func newCensusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "anios",
		Short: "Count stored enrollment rows per year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.enrollments(cmd.Context())
			if err != nil {
				return err
			}
			counts, err := svc.YearCensus(cmd.Context())
			if err != nil {
				return err
			}
			writeCensus(cmd.OutOrStdout(), counts, svc.AcademicYear())
			return nil
		},
	}
}

func newSampleCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "muestra",
		Short: "Render a built-in sample form without a database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.registration(nil)
			if err != nil {
				return err
			}
			content, err := svc.RenderRecords([]models.EnrollmentRecord{sampleRecord()})
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), output, content, 1)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "muestra.pdf", "output file")
	return cmd
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

func writeDocument(out io.Writer, path string, content []byte, pages int) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintln(out, color.GreenString("wrote %s (%d pages, %d bytes)", path, pages, len(content)))
	return nil
}

func writeRecords(out io.Writer, records []models.EnrollmentRecord) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Codigo", "Año", "Identificacion", "Nombres", "Grupo", "Sede"})
	table.SetAutoWrapText(false)
	for _, r := range records {
		table.Append([]string{
			r.Codigo,
			strconv.Itoa(r.Year),
			models.Display(r.Estudiante),
			models.Display(r.Nombres),
			models.Display(r.Asignacion) + "-" + models.Display(r.Nivel) + "-" + models.Display(r.Numero),
			models.Display(r.Sede),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Total", strconv.Itoa(len(records))})
	table.Render()
}

func writeCensus(out io.Writer, counts []models.YearCount, current int) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Año", "Registros"})
	for _, c := range counts {
		year := strconv.Itoa(c.Year)
		if c.Year == current {
			year += " *"
		}
		table.Append([]string{year, strconv.Itoa(c.Total)})
	}
	table.Render()
	fmt.Fprintf(out, "* año académico de búsqueda: %d\n", current)
}

func sampleRecord() models.EnrollmentRecord {
	s := func(v string) *string { return &v }
	age := 15
	return models.EnrollmentRecord{
		Codigo:             "MUESTRA-001",
		Year:               2024,
		Estudiante:         s("1002003004"),
		Nombres:            s("ESTUDIANTE DE PRUEBA"),
		Genero:             s("F"),
		TipoSangre:         s("O+"),
		EmailEstudiante:    s("estudiante@example.com"),
		FecNac:             s("2009-04-12"),
		Edad:               &age,
		LugarNacimiento:    s("ANSERMA - CALDAS"),
		TDEI:               s("TI"),
		FechaExpedicion:    s("2016-05-02"),
		LugarExpedicion:    s("ANSERMA"),
		Telefono1:          s("3001234567"),
		Direccion:          s("CALLE 10 # 5-20"),
		Lugar:              s("URBANA"),
		Sisben:             s("B2"),
		Estrato:            s("2"),
		EPS:                s("SALUD TOTAL"),
		Activo:             s("SI"),
		Estado:             s("MATRICULADO"),
		Asignacion:         s("5"),
		Nivel:              s("10"),
		Numero:             s("01"),
		Sede:               s("SEDE PRINCIPAL"),
		InstitucionExterna: s("COLEGIO DE ORIGEN - RIOSUCIO"),
		OtraInformacion:    s("Línea uno de observaciones.\nLínea dos de observaciones."),
		Padre:              s("PADRE DE PRUEBA"),
		OcupacionPadre:     s("OFICIOS_VARIOS"),
		Madre:              s("MADRE DE PRUEBA"),
		OcupacionMadre:     s("AMA_DE_CASA"),
		Acudiente:          s("MADRE DE PRUEBA"),
		Parentesco:         s("MADRE"),
		TelefonoAcudiente:  s("3109876543"),
		VictimaConflicto:   s("NO"),
		Etnia:              s("NINGUNA"),
		Discapacidad:       s("NINGUNA"),
	}
}
