package report

// Section nombre estable de una sección del reporte (coincide con la clave JSON).
type Section string

// Secciones de servicio (cuentan en el resumen) y la sección de perfil del asesor.
const (
	SectionOnboarding        Section = "onboarding"
	SectionEngagementLetters Section = "engagementLetters"
	SectionFinancialPlans    Section = "financialPlans"
	SectionMeetings          Section = "meetings"
	SectionMFExitStrategies  Section = "mfExitStrategies"
	SectionTaxPlanning       Section = "taxPlanning"
	SectionChatHistory       Section = "chatHistory"
	SectionKYC               Section = "kyc"

	SectionProfile Section = "profile"
)

// ServiceSections orden canónico de las secciones de servicio en el reporte y en el desglose.
var ServiceSections = []Section{
	SectionOnboarding,
	SectionEngagementLetters,
	SectionFinancialPlans,
	SectionMeetings,
	SectionMFExitStrategies,
	SectionTaxPlanning,
	SectionChatHistory,
	SectionKYC,
}

// activeStatuses tabla auditable de qué estado cuenta como "activo" en cada sección.
// Para KYC se evalúa overallStatus.
var activeStatuses = map[Section]map[string]struct{}{
	SectionOnboarding:        set("completed"),
	SectionEngagementLetters: set("signed"),
	SectionFinancialPlans:    set("active"),
	SectionMeetings:          set("completed"),
	SectionMFExitStrategies:  set("approved", "in_execution", "completed"),
	SectionTaxPlanning:       set("approved", "completed"),
	SectionChatHistory:       set("active"),
	SectionKYC:               set("verified"),
}

// IsActive indica si status cuenta como activo para la sección. Comparación exacta.
func IsActive(s Section, status string) bool {
	_, ok := activeStatuses[s][status]
	return ok
}

// ActiveStatuses devuelve los estados activos de la sección (copia, para documentación y tests).
func ActiveStatuses(s Section) []string {
	out := make([]string, 0, len(activeStatuses[s]))
	for st := range activeStatuses[s] {
		out = append(out, st)
	}
	return out
}

// SectionNames nombres de las secciones de servicio en orden canónico.
func SectionNames() []string {
	out := make([]string, len(ServiceSections))
	for i, s := range ServiceSections {
		out[i] = string(s)
	}
	return out
}

func set(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}
