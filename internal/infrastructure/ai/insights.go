package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/application/ports"
)

// insightsSystemPrompt define el rol del modelo y el formato de salida.
const insightsSystemPrompt = `Eres un analista que asiste a asesores financieros registrados en India.
Recibes un resumen numérico (sin datos personales) de la relación de un cliente con su asesor:
servicios prestados por sección, estados de cada registro y su situación financiera en INR.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown) con esta estructura exacta:
{
  "headline": "<una frase que resuma la situación del cliente>",
  "highlights": ["<hasta 4 puntos positivos o hechos relevantes>"],
  "risks": ["<hasta 4 riesgos o pendientes>"],
  "next_steps": ["<hasta 4 acciones concretas para el asesor>"]
}

Reglas:
- Básate solo en las cifras recibidas; no inventes registros.
- Si una sección figura como no disponible, menciónalo como limitación, no como ausencia de servicio.
- Máximo 160 caracteres por elemento. Sin texto fuera del JSON.`

// insightsPayload es el JSON que esperamos recibir del modelo.
type insightsPayload struct {
	Headline   string   `json:"headline"`
	Highlights []string `json:"highlights"`
	Risks      []string `json:"risks"`
	NextSteps  []string `json:"next_steps"`
}

// digestJSON forma serializable del digest enviada como mensaje de usuario.
type digestJSON struct {
	RiskTolerance       string          `json:"risk_tolerance,omitempty"`
	MonthlyIncome       string          `json:"monthly_income_inr"`
	MonthlyExpenses     string          `json:"monthly_expenses_inr"`
	MonthlySurplus      string          `json:"monthly_surplus_inr"`
	NetWorth            string          `json:"net_worth_inr"`
	PortfolioValue      string          `json:"portfolio_value_inr"`
	HasCAS              bool            `json:"has_cas"`
	TotalServices       int             `json:"total_services"`
	ActiveServices      int             `json:"active_services"`
	UnavailableSections []string        `json:"unavailable_sections"`
	Sections            []sectionDigest `json:"sections"`
}

type sectionDigest struct {
	Section     string         `json:"section"`
	Count       int            `json:"count"`
	ActiveCount int            `json:"active_count"`
	Statuses    map[string]int `json:"statuses"`
}

// userMessage serializa el digest; las claves de Statuses salen ordenadas por encoding/json.
func userMessage(d ports.ReportDigest) (string, error) {
	out := digestJSON{
		RiskTolerance:       d.RiskTolerance,
		MonthlyIncome:       d.MonthlyIncome.StringFixed(0),
		MonthlyExpenses:     d.MonthlyExpenses.StringFixed(0),
		MonthlySurplus:      d.MonthlySurplus.StringFixed(0),
		NetWorth:            d.NetWorth.StringFixed(0),
		PortfolioValue:      d.PortfolioValue.StringFixed(0),
		HasCAS:              d.HasCAS,
		TotalServices:       d.TotalServices,
		ActiveServices:      d.ActiveServices,
		UnavailableSections: d.UnavailableSections,
		Sections:            make([]sectionDigest, 0, len(d.Sections)),
	}
	if out.UnavailableSections == nil {
		out.UnavailableSections = []string{}
	}
	for _, s := range d.Sections {
		out.Sections = append(out.Sections, sectionDigest(s))
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("AI: serializar digest: %w", err)
	}
	return "Resumen del cliente:\n" + string(b), nil
}

// parseInsights interpreta el texto del modelo y recorta las listas.
func parseInsights(rawText, model string) (*dto.ReportInsightsDTO, error) {
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo")
	}
	var p insightsPayload
	if err := json.Unmarshal([]byte(cleanJSON), &p); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de insights: %w", err)
	}
	if strings.TrimSpace(p.Headline) == "" {
		return nil, fmt.Errorf("AI: respuesta sin headline")
	}
	return &dto.ReportInsightsDTO{
		Headline:   strings.TrimSpace(p.Headline),
		Highlights: clip(p.Highlights),
		Risks:      clip(p.Risks),
		NextSteps:  clip(p.NextSteps),
		Model:      model,
	}, nil
}

// clip descarta vacíos y deja como máximo 4 elementos.
func clip(items []string) []string {
	out := make([]string, 0, 4)
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		out = append(out, it)
		if len(out) == 4 {
			break
		}
	}
	return out
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}

