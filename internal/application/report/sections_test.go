package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActive_TablaDeEstados(t *testing.T) {
	cases := []struct {
		section Section
		status  string
		want    bool
	}{
		{SectionOnboarding, "completed", true},
		{SectionOnboarding, "sent", false},
		{SectionEngagementLetters, "signed", true},
		{SectionEngagementLetters, "viewed", false},
		{SectionFinancialPlans, "active", true},
		{SectionFinancialPlans, "archived", false},
		{SectionMeetings, "completed", true},
		{SectionMeetings, "scheduled", false},
		{SectionMFExitStrategies, "in_execution", true},
		{SectionMFExitStrategies, "pending_approval", false},
		{SectionTaxPlanning, "approved", true},
		{SectionTaxPlanning, "review", false},
		{SectionChatHistory, "active", true},
		{SectionKYC, "verified", true},
		{SectionKYC, "in_progress", false},
		// comparación exacta
		{SectionMeetings, "Completed", false},
		{SectionProfile, "active", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsActive(tc.section, tc.status), "%s/%s", tc.section, tc.status)
	}
}

func TestActiveStatuses_CadaSeccionTieneEstados(t *testing.T) {
	for _, s := range ServiceSections {
		assert.NotEmpty(t, ActiveStatuses(s), s)
	}
	assert.ElementsMatch(t, []string{"approved", "in_execution", "completed"}, ActiveStatuses(SectionMFExitStrategies))
}

func TestSectionNames_OrdenCanonico(t *testing.T) {
	assert.Equal(t, []string{
		"onboarding", "engagementLetters", "financialPlans", "meetings",
		"mfExitStrategies", "taxPlanning", "chatHistory", "kyc",
	}, SectionNames())
}
