package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/repository"
)

// records lectura genérica de una colección de registros por servicio.
// D es el documento Mongo, E la entidad de dominio.
type records[D any, E any] struct {
	coll *mongo.Collection
	conv func(*D) *E
}

// ListByClient filtra por el par (clientId, advisorId): un registro de otro asesor
// nunca sale aunque apunte al mismo cliente.
func (r records[D, E]) ListByClient(ctx context.Context, scope entity.Scope) ([]*E, error) {
	filter, err := scopeFilter(scope)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: %s: %w", r.coll.Name(), err)
	}
	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: %s: decodificar: %w", r.coll.Name(), err)
	}

	out := make([]*E, 0, len(docs))
	for i := range docs {
		out = append(out, r.conv(&docs[i]))
	}
	return out, nil
}

func scopeFilter(scope entity.Scope) (bson.D, error) {
	clientID, err := objectID(scope.ClientID)
	if err != nil {
		return nil, err
	}
	advisorID, err := objectID(scope.AdvisorID)
	if err != nil {
		return nil, err
	}
	return bson.D{{Key: "clientId", Value: clientID}, {Key: "advisorId", Value: advisorID}}, nil
}

func objectID(id entity.ID) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id.String())
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id.String())
	}
	return oid, nil
}

// ── Repositorios concretos ────────────────────────────────────────────────────

// OnboardingRepository invitaciones de onboarding (clientinvitations).
type OnboardingRepository struct {
	records[invitationDoc, entity.OnboardingInvitation]
}

func NewOnboardingRepository(db *DB) *OnboardingRepository {
	return &OnboardingRepository{records[invitationDoc, entity.OnboardingInvitation]{
		coll: db.db.Collection(collInvitations),
		conv: (*invitationDoc).toEntity,
	}}
}

// EngagementLetterRepository cartas de compromiso (loes).
type EngagementLetterRepository struct {
	records[letterDoc, entity.EngagementLetter]
}

func NewEngagementLetterRepository(db *DB) *EngagementLetterRepository {
	return &EngagementLetterRepository{records[letterDoc, entity.EngagementLetter]{
		coll: db.db.Collection(collLetters),
		conv: (*letterDoc).toEntity,
	}}
}

// FinancialPlanRepository planes financieros.
type FinancialPlanRepository struct {
	records[planDoc, entity.FinancialPlan]
}

func NewFinancialPlanRepository(db *DB) *FinancialPlanRepository {
	return &FinancialPlanRepository{records[planDoc, entity.FinancialPlan]{
		coll: db.db.Collection(collPlans),
		conv: (*planDoc).toEntity,
	}}
}

// MeetingRepository reuniones.
type MeetingRepository struct {
	records[meetingDoc, entity.Meeting]
}

func NewMeetingRepository(db *DB) *MeetingRepository {
	return &MeetingRepository{records[meetingDoc, entity.Meeting]{
		coll: db.db.Collection(collMeetings),
		conv: (*meetingDoc).toEntity,
	}}
}

// ExitStrategyRepository estrategias de salida de fondos mutuos.
type ExitStrategyRepository struct {
	records[exitDoc, entity.MutualFundExitStrategy]
}

func NewExitStrategyRepository(db *DB) *ExitStrategyRepository {
	return &ExitStrategyRepository{records[exitDoc, entity.MutualFundExitStrategy]{
		coll: db.db.Collection(collExits),
		conv: (*exitDoc).toEntity,
	}}
}

// TaxPlanRepository planificación tributaria.
type TaxPlanRepository struct {
	records[taxDoc, entity.TaxPlan]
}

func NewTaxPlanRepository(db *DB) *TaxPlanRepository {
	return &TaxPlanRepository{records[taxDoc, entity.TaxPlan]{
		coll: db.db.Collection(collTaxPlans),
		conv: (*taxDoc).toEntity,
	}}
}

// ChatRepository historial de chat con el asistente.
type ChatRepository struct {
	records[chatDoc, entity.ChatConversation]
}

func NewChatRepository(db *DB) *ChatRepository {
	return &ChatRepository{records[chatDoc, entity.ChatConversation]{
		coll: db.db.Collection(collChats),
		conv: (*chatDoc).toEntity,
	}}
}

// KYCRepository verificaciones KYC.
type KYCRepository struct {
	records[kycDoc, entity.KYCVerification]
}

func NewKYCRepository(db *DB) *KYCRepository {
	return &KYCRepository{records[kycDoc, entity.KYCVerification]{
		coll: db.db.Collection(collVerification),
		conv: (*kycDoc).toEntity,
	}}
}

var (
	_ repository.OnboardingRepository       = (*OnboardingRepository)(nil)
	_ repository.EngagementLetterRepository = (*EngagementLetterRepository)(nil)
	_ repository.FinancialPlanRepository    = (*FinancialPlanRepository)(nil)
	_ repository.MeetingRepository          = (*MeetingRepository)(nil)
	_ repository.ExitStrategyRepository     = (*ExitStrategyRepository)(nil)
	_ repository.TaxPlanRepository          = (*TaxPlanRepository)(nil)
	_ repository.ChatRepository             = (*ChatRepository)(nil)
	_ repository.KYCRepository              = (*KYCRepository)(nil)
)
