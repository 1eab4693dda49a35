package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

// PDFGenerator puerto para renderizar el reporte en PDF (implementado en infrastructure/pdf).
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *dto.ClientReportDTO) ([]byte, error)
}

// PDFUseCase genera la versión descargable del reporte integral.
// El PDF se construye siempre sobre la salida del agregador: no hay consultas propias.
type PDFUseCase struct {
	agg       *Aggregator
	generator PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(agg *Aggregator, generator PDFGenerator) *PDFUseCase {
	return &PDFUseCase{agg: agg, generator: generator}
}

// DownloadReportPDF compone el reporte y lo renderiza.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - los mismos errores que Aggregator.Build.
func (uc *PDFUseCase) DownloadReportPDF(
	ctx context.Context,
	actor entity.AdvisorContext,
	clientID entity.ID,
) (pdfBytes []byte, filename string, err error) {
	r, err := uc.agg.Build(ctx, actor, clientID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateReportPDF(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("reporte_%s_%s.pdf", slug(r.Header.ClientName), r.Header.GeneratedAt.Format("20060102"))
	return pdfBytes, filename, nil
}

// slug nombre apto para Content-Disposition: minúsculas, ASCII y guiones bajos.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "cliente"
	}
	return b.String()
}
