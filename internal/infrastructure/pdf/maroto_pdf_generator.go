// Package pdf implementa la versión imprimible del reporte integral de cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Firma + asesor       │  Reporte + fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + contacto + estado                         │
//	│  FINANZAS: ingresos / gastos / excedente / patrimonio / CAS  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Sección | Estado | Registros | Activos             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: una tabla corta por sección con registros          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: secciones no disponibles + leyenda                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/application/report"
)

// maxDetailRows registros por sección que se imprimen; el resto se resume en una línea.
const maxDetailRows = 10

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 58, Blue: 138}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
}

var _ report.PDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador. Los montos se formatean en en-IN (lakh/crore).
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.MustParse("en-IN"))}
}

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(_ context.Context, r *dto.ClientReportDTO) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("pdf: reporte nil")
	}
	primary := colorPrimary
	author := r.Header.Advisor.Email
	if b := r.Header.Advisor.Branding; b != nil {
		if c, ok := parseHexColor(b.PrimaryColor); ok {
			primary = c
		}
		if b.FirmName != "" {
			author = b.FirmName
		}
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte integral de cliente", true).
		WithAuthor(author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r, primary))
	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.5}))
	m.AddRows(clientRow(r, primary))
	m.AddRows(g.financialRow(r, primary))
	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("RESUMEN DE SERVICIOS", primary))
	m.AddRows(tableHeaderRow(primary, []string{"Sección", "Estado", "Registros", "Activos"}, []int{6, 2, 2, 2}))
	for _, b := range r.Summary.Breakdown {
		m.AddRows(tableRow([]string{sectionLabel(b.Section), b.Status, strconv.Itoa(b.Count), strconv.Itoa(b.ActiveCount)}, []int{6, 2, 2, 2}))
	}
	m.AddRows(g.totalsRow(r, primary))

	for _, sec := range detailSections(r) {
		if sec.status != dto.SectionStatusOK || len(sec.rows) == 0 {
			continue
		}
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionTitleRow(strings.ToUpper(sectionLabel(sec.name)), primary))
		m.AddRows(tableHeaderRow(primary, []string{"Descripción", "Estado", "Fecha"}, []int{7, 2, 3}))
		shown := sec.rows
		if len(shown) > maxDetailRows {
			shown = shown[:maxDetailRows]
		}
		for _, dr := range shown {
			m.AddRows(tableRow([]string{dr.label, dr.status, dr.date}, []int{7, 2, 3}))
		}
		if extra := len(sec.rows) - len(shown); extra > 0 {
			m.AddRows(noteRow(fmt.Sprintf("… y %d registros más", extra), colorGray))
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, fr := range footerRows(r) {
		m.AddRows(fr)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: firma + asesor (izq) y reporte + fecha (der).
func headerRow(r *dto.ClientReportDTO, primary *props.Color) core.Row {
	firm := r.Header.Advisor.Name
	tagline := ""
	if b := r.Header.Advisor.Branding; b != nil {
		firm = nonEmpty(b.FirmName, firm)
		tagline = b.Tagline
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New(nonEmpty(firm, "Asesor financiero"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: primary, Top: 1,
			}),
			text.New(nonEmpty(tagline, r.Header.Advisor.Email), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New("Asesor: "+nonEmpty(r.Header.Advisor.Name, r.Header.Advisor.Email), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE INTEGRAL DE CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: primary, Top: 1,
			}),
			text.New(r.Header.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+r.Header.GeneratedAt.Format("02/01/2006 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos personales.
func clientRow(r *dto.ClientReportDTO, primary *props.Color) core.Row {
	p := r.Client.Personal
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: primary, Top: 1,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   PAN: %s",
				nonEmpty(p.Email, "-"),
				nonEmpty(p.PhoneNumber, "-"),
				nonEmpty(p.PAN, "-"),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(fmt.Sprintf("Estado: %s   |   Ocupación: %s   |   Cliente desde: %s",
				nonEmpty(p.Status, "-"),
				nonEmpty(p.Occupation, "-"),
				formatDate(&p.ClientSince),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// financialRow: instantánea financiera y CAS.
func (g *MarotoPDFGenerator) financialRow(r *dto.ClientReportDTO, primary *props.Color) core.Row {
	f := r.Client.Financial
	cas := "sin CAS"
	if f.CAS != nil {
		cas = fmt.Sprintf("CAS: %s (%d posiciones)", g.formatINR(f.CAS.TotalValue), f.CAS.HoldingCount)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SITUACIÓN FINANCIERA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: primary, Top: 1,
			}),
			text.New(fmt.Sprintf("Ingreso mensual: %s   |   Gasto mensual: %s   |   Excedente: %s",
				g.formatINR(f.MonthlyIncome),
				g.formatINR(f.MonthlyExpenses),
				g.formatINR(f.MonthlySurplus),
			), props.Text{Size: 8, Top: 6}),
			text.New(fmt.Sprintf("Patrimonio: %s   |   Portafolio: %s   |   %s",
				g.formatINR(f.NetWorth),
				g.formatINR(f.PortfolioValue),
				cas,
			), props.Text{Size: 8, Top: 11}),
		),
	)
}

// totalsRow: totales del resumen alineados a la derecha.
func (g *MarotoPDFGenerator) totalsRow(r *dto.ClientReportDTO, primary *props.Color) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: primary, Right: 1})
	}
	s := r.Summary
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Servicios:"),
			label("Activos:"),
			label("Portafolio:"),
		),
		col.New(3).Add(
			value(strconv.Itoa(s.TotalServices)),
			value(strconv.Itoa(s.ActiveServices)),
			value(g.formatINR(s.PortfolioValue)),
		),
	)
}

func sectionTitleRow(title string, primary *props.Color) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: primary, Top: 2}),
	))
}

// tableHeaderRow cabecera de tabla; sizes debe sumar 12.
func tableHeaderRow(primary *props.Color, labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: primary})
}

func tableRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{Size: 8, Top: 1, Left: 1})))
	}
	return row.New(6).Add(cols...)
}

func noteRow(s string, color *props.Color) core.Row {
	return row.New(5).Add(col.New(12).Add(text.New(s, props.Text{Size: 7, Color: color, Top: 1, Left: 1})))
}

// footerRows: secciones no disponibles + leyenda.
func footerRows(r *dto.ClientReportDTO) []core.Row {
	var rows []core.Row
	if !r.Summary.Complete {
		labels := make([]string, 0, len(r.Summary.UnavailableSections))
		for _, s := range r.Summary.UnavailableSections {
			labels = append(labels, sectionLabel(s))
		}
		rows = append(rows, noteRow("Secciones no disponibles al generar el reporte: "+strings.Join(labels, ", "), colorAlert))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte "+r.Header.ReportID+". Documento informativo generado a partir de los registros "+
				"vigentes al momento de la consulta; no constituye asesoría de inversión.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── Detalle por sección ───────────────────────────────────────────────────────

type detailRow struct {
	label  string
	status string
	date   string
}

type detailSection struct {
	name   string
	status string
	rows   []detailRow
}

// detailSections aplana cada sección a filas (descripción, estado, fecha) en orden canónico.
func detailSections(r *dto.ClientReportDTO) []detailSection {
	s := r.Services
	return []detailSection{
		flatten(string(report.SectionOnboarding), s.Onboarding, func(d dto.OnboardingRecordDTO) detailRow {
			return detailRow{d.Email, d.Status, formatDate(&d.CreatedAt)}
		}),
		flatten(string(report.SectionEngagementLetters), s.EngagementLetters, func(d dto.EngagementLetterRecordDTO) detailRow {
			return detailRow{nonEmpty(strings.Join(d.Services, ", "), "Carta de compromiso"), d.Status, formatDate(d.SignedAt)}
		}),
		flatten(string(report.SectionFinancialPlans), s.FinancialPlans, func(d dto.FinancialPlanRecordDTO) detailRow {
			return detailRow{fmt.Sprintf("%s v%d (%d metas)", d.PlanType, d.Version, d.Goals), d.Status, formatDate(d.ReviewDate)}
		}),
		flatten(string(report.SectionMeetings), s.Meetings, func(d dto.MeetingRecordDTO) detailRow {
			return detailRow{d.Title, d.Status, formatDate(d.ScheduledAt)}
		}),
		flatten(string(report.SectionMFExitStrategies), s.MFExitStrategies, func(d dto.ExitStrategyRecordDTO) detailRow {
			return detailRow{d.SchemeName, d.Status, formatDate(d.TargetExitDate)}
		}),
		flatten(string(report.SectionTaxPlanning), s.TaxPlanning, func(d dto.TaxPlanRecordDTO) detailRow {
			return detailRow{"Año fiscal " + d.TaxYear, d.Status, formatDate(&d.CreatedAt)}
		}),
		flatten(string(report.SectionChatHistory), s.ChatHistory, func(d dto.ChatRecordDTO) detailRow {
			return detailRow{fmt.Sprintf("%s (%d mensajes)", d.Title, d.MessageCount), d.Status, formatDate(d.LastMessageAt)}
		}),
		flatten(string(report.SectionKYC), s.KYC, func(d dto.KYCRecordDTO) detailRow {
			return detailRow{d.Provider, d.OverallStatus, formatDate(d.VerifiedAt)}
		}),
	}
}

func flatten[T any](name string, sec dto.SectionDTO[T], fn func(T) detailRow) detailSection {
	out := detailSection{name: name, status: sec.Status, rows: make([]detailRow, 0, len(sec.Records))}
	for _, rec := range sec.Records {
		out.rows = append(out.rows, fn(rec))
	}
	return out
}

// ── helpers ───────────────────────────────────────────────────────────────────

var sectionLabels = map[string]string{
	string(report.SectionOnboarding):        "Onboarding",
	string(report.SectionEngagementLetters): "Cartas de compromiso",
	string(report.SectionFinancialPlans):    "Planes financieros",
	string(report.SectionMeetings):          "Reuniones",
	string(report.SectionMFExitStrategies):  "Estrategias de salida MF",
	string(report.SectionTaxPlanning):       "Planificación tributaria",
	string(report.SectionChatHistory):       "Historial de chat",
	string(report.SectionKYC):               "KYC",
	string(report.SectionProfile):           "Perfil del asesor",
}

func sectionLabel(s string) string {
	if l, ok := sectionLabels[s]; ok {
		return l
	}
	return s
}

// formatINR redondea a rupias enteras y agrupa según en-IN. Ej: 2500000 → "Rs 25,00,000".
// Helvetica no tiene el glifo de la rupia, de ahí el prefijo "Rs".
func (g *MarotoPDFGenerator) formatINR(d decimal.Decimal) string {
	return "Rs " + g.printer.Sprintf("%d", d.Round(0).IntPart())
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// parseHexColor interpreta "#rrggbb"; ok=false si el formato no es válido.
func parseHexColor(s string) (*props.Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return nil, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, false
	}
	return &props.Color{Red: int(v >> 16 & 0xff), Green: int(v >> 8 & 0xff), Blue: int(v & 0xff)}, true
}
