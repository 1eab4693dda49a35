// Package mongo implementa los accessors de clientes y registros por servicio
// sobre MongoDB (driver oficial v2).
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/UDDITwork/FINREP-sub006/pkg/config"
)

// Nombres de colección (convención pluralizada en minúsculas del almacén existente).
const (
	collClients      = "clients"
	collInvitations  = "clientinvitations"
	collLetters      = "loes"
	collPlans        = "financialplans"
	collMeetings     = "meetings"
	collExits        = "mutualfundexitstrategies"
	collTaxPlans     = "taxplannings"
	collChats        = "chathistories"
	collVerification = "kycverifications"
)

// recordCollections colecciones de registros por servicio (todas con clientId/advisorId/createdAt).
var recordCollections = []string{
	collInvitations,
	collLetters,
	collPlans,
	collMeetings,
	collExits,
	collTaxPlans,
	collChats,
	collVerification,
}

// DB cliente Mongo más la base de datos de la aplicación.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect abre el cliente, verifica con Ping y selecciona la base de datos.
func Connect(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(cfg.MaxPoolSize))
	}
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: conectar: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}
	return &DB{client: client, db: client.Database(cfg.Database)}, nil
}

// Ping comprueba la conectividad (health check).
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// Close cierra el cliente.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Database base de datos de la aplicación.
func (d *DB) Database() *mongo.Database {
	return d.db
}

// EnsureIndexes crea los índices que usan las lecturas acotadas por asesor.
// Es idempotente: createIndexes no falla si el índice ya existe con la misma definición.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		collClients: {
			{Keys: bson.D{{Key: "advisor", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "advisor", Value: 1}, {Key: "email", Value: 1}}},
		},
	}
	for _, name := range recordCollections {
		indexes[name] = []mongo.IndexModel{
			{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "advisorId", Value: 1}, {Key: "createdAt", Value: 1}}},
		}
	}
	for name, models := range indexes {
		if _, err := d.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo: índices de %s: %w", name, err)
		}
	}
	return nil
}
