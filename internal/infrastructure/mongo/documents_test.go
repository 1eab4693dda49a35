package mongo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

var (
	oidAdvisor = mustOID("65a1f0c2e4b0a1b2c3d4e5a1")
	oidClient  = mustOID("65a1f0c2e4b0a1b2c3d4e5c3")
	created    = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
)

func mustOID(h string) bson.ObjectID {
	oid, err := bson.ObjectIDFromHex(h)
	if err != nil {
		panic(err)
	}
	return oid
}

// decode simula la lectura desde la colección: marshal del documento crudo y
// unmarshal al struct, para validar los nombres de campo bson.
func decode[D any](t *testing.T, raw bson.M) *D {
	t.Helper()
	b, err := bson.Marshal(raw)
	require.NoError(t, err)
	var d D
	require.NoError(t, bson.Unmarshal(b, &d))
	return &d
}

func TestClientDoc_ToEntity(t *testing.T) {
	d := decode[clientDoc](t, bson.M{
		"_id":                  oidClient,
		"advisor":              oidAdvisor,
		"firstName":            "Ravi",
		"lastName":             "Sharma",
		"email":                "ravi@example.com",
		"panNumber":            "ABCDE1234F",
		"address":              bson.M{"city": "Pune"},
		"status":               "active",
		"totalMonthlyIncome":   150000.0,
		"totalMonthlyExpenses": 90000.0,
		"netWorth":             1234567.891,
		"enhancedRiskProfile":  bson.M{"riskTolerance": "moderate"},
		"casData": bson.M{
			"summary": bson.M{"totalValue": 2500000.5, "mutualFundsValue": 2000000.0, "equitiesValue": 500000.5, "holdingCount": 7},
		},
		"createdAt": created,
	})

	c := d.toEntity()
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5c3", c.ID.String())
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5a1", c.AdvisorID.String())
	assert.Equal(t, "ABCDE1234F", c.PAN)
	assert.Equal(t, "Pune", c.City)
	assert.Equal(t, "moderate", c.RiskTolerance)
	assert.True(t, c.MonthlyIncome.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, "1234567.89", c.NetWorth.String())
	require.NotNil(t, c.CAS)
	assert.Equal(t, "2500000.5", c.CAS.TotalValue.String())
	assert.Equal(t, 7, c.CAS.HoldingCount)
	assert.True(t, created.Equal(c.CreatedAt))
}

func TestClientDoc_CASSinParsearEsAusente(t *testing.T) {
	d := decode[clientDoc](t, bson.M{
		"_id":     oidClient,
		"advisor": oidAdvisor,
		"casData": bson.M{"parsedAt": created},
	})
	assert.Nil(t, d.toEntity().CAS)
}

func TestMeetingDoc_ToEntity(t *testing.T) {
	d := decode[meetingDoc](t, bson.M{
		"_id":         mustOID("65a1f0c2e4b0a1b2c3d4e001"),
		"clientId":    oidClient,
		"advisorId":   oidAdvisor,
		"title":       "Revisión anual",
		"meetingType": "scheduled",
		"status":      "completed",
		"duration":    45,
		"transcript":  bson.M{"status": "completed", "summary": "Rebalanceo acordado"},
		"createdAt":   created,
	})

	m := d.toEntity()
	assert.Equal(t, "completed", m.Status)
	assert.Equal(t, 45, m.DurationMinutes)
	assert.True(t, m.TranscriptAvailable)
	assert.Equal(t, "Rebalanceo acordado", m.Summary)
	assert.Equal(t, oidClient.Hex(), m.ClientID.String())
}

func TestPlanYChatDoc_CuentanSubdocumentos(t *testing.T) {
	p := decode[planDoc](t, bson.M{
		"_id":       mustOID("65a1f0c2e4b0a1b2c3d4e002"),
		"clientId":  oidClient,
		"advisorId": oidAdvisor,
		"planType":  "goal_based",
		"status":    "active",
		"goals":     bson.A{bson.M{"name": "Retiro"}, bson.M{"name": "Educación"}},
	}).toEntity()
	assert.Equal(t, 2, p.Goals)

	c := decode[chatDoc](t, bson.M{
		"_id":       mustOID("65a1f0c2e4b0a1b2c3d4e003"),
		"clientId":  oidClient,
		"advisorId": oidAdvisor,
		"status":    "active",
		"messages":  bson.A{bson.M{"role": "user"}, bson.M{"role": "assistant"}, bson.M{"role": "user"}},
	}).toEntity()
	assert.Equal(t, 3, c.MessageCount)
}

func TestExitYTaxDoc_Montos(t *testing.T) {
	e := decode[exitDoc](t, bson.M{
		"_id":        mustOID("65a1f0c2e4b0a1b2c3d4e004"),
		"clientId":   oidClient,
		"advisorId":  oidAdvisor,
		"schemeName": "Axis Bluechip",
		"exitAmount": 100000.10,
		"status":     "pending_approval",
	}).toEntity()
	assert.Equal(t, "100000.1", e.ExitAmount.String())

	tx := decode[taxDoc](t, bson.M{
		"_id":              mustOID("65a1f0c2e4b0a1b2c3d4e005"),
		"clientId":         oidClient,
		"advisorId":        oidAdvisor,
		"taxYear":          "2025-26",
		"taxRegime":        "new",
		"estimatedSavings": 46800.0,
	}).toEntity()
	assert.Equal(t, "new", tx.Regime)
	assert.True(t, tx.EstimatedSavings.Equal(decimal.NewFromInt(46800)))
}

func TestKYCYLetterDoc_ToEntity(t *testing.T) {
	k := decode[kycDoc](t, bson.M{
		"_id":           mustOID("65a1f0c2e4b0a1b2c3d4e006"),
		"clientId":      oidClient,
		"advisorId":     oidAdvisor,
		"provider":      "digio",
		"overallStatus": "verified",
		"aadharStatus":  "verified",
		"panStatus":     "verified",
	}).toEntity()
	assert.Equal(t, "verified", k.OverallStatus)
	assert.Equal(t, "verified", k.PANStatus)

	l := decode[letterDoc](t, bson.M{
		"_id":       mustOID("65a1f0c2e4b0a1b2c3d4e007"),
		"clientId":  oidClient,
		"advisorId": oidAdvisor,
		"status":    "signed",
		"services":  bson.A{"financial_planning", "tax_planning"},
	}).toEntity()
	assert.Equal(t, []string{"financial_planning", "tax_planning"}, l.Services)

	inv := decode[invitationDoc](t, bson.M{
		"_id":         mustOID("65a1f0c2e4b0a1b2c3d4e008"),
		"clientId":    oidClient,
		"advisorId":   oidAdvisor,
		"clientEmail": "ravi@example.com",
		"status":      "completed",
		"emailCount":  2,
	}).toEntity()
	assert.Equal(t, "ravi@example.com", inv.Email)
	assert.Equal(t, 2, inv.EmailCount)
}

func TestScopeFilter(t *testing.T) {
	f, err := scopeFilter(entity.Scope{
		ClientID:  entity.MustParseID(oidClient.Hex()),
		AdvisorID: entity.MustParseID(oidAdvisor.Hex()),
	})
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "clientId", Value: oidClient}, {Key: "advisorId", Value: oidAdvisor}}, f)

	_, err = scopeFilter(entity.Scope{ClientID: entity.MustParseID(oidClient.Hex())})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
