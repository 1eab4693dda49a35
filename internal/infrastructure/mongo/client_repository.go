package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/repository"
)

// ClientRepository clientes; el dueño se guarda en el campo "advisor".
type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{coll: db.db.Collection(collClients)}
}

var _ repository.ClientRepository = (*ClientRepository)(nil)

// GetForAdvisor un solo FindOne por _id y advisor: inexistente y ajeno son indistinguibles.
func (r *ClientRepository) GetForAdvisor(ctx context.Context, scope entity.Scope) (*entity.Client, error) {
	clientID, err := objectID(scope.ClientID)
	if err != nil {
		return nil, err
	}
	advisorID, err := objectID(scope.AdvisorID)
	if err != nil {
		return nil, err
	}

	var doc clientDoc
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: clientID}, {Key: "advisor", Value: advisorID}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: clients: %w", err)
	}
	return doc.toEntity(), nil
}

// ListByAdvisor más recientes primero; _id desempata para paginar de forma estable.
func (r *ClientRepository) ListByAdvisor(ctx context.Context, advisorID entity.ID, limit, offset int) ([]*entity.Client, error) {
	oid, err := objectID(advisorID)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.D{{Key: "advisor", Value: oid}}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: clients: %w", err)
	}
	var docs []clientDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: clients: decodificar: %w", err)
	}
	out := make([]*entity.Client, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toEntity())
	}
	return out, nil
}

func (r *ClientRepository) CountByAdvisor(ctx context.Context, advisorID entity.ID) (int, error) {
	oid, err := objectID(advisorID)
	if err != nil {
		return 0, err
	}
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "advisor", Value: oid}})
	if err != nil {
		return 0, fmt.Errorf("mongo: clients: contar: %w", err)
	}
	return int(n), nil
}
