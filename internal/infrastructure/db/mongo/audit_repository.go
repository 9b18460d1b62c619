package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

const auditCollection = "auth_events"

// MongoAuditRepository persists the authentication audit trail.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	ID        string `bson:"_id"`
	ContextID string `bson:"context_id"`
	Kind      string `bson:"kind"`
	Email     string `bson:"email"`
	Role      string `bson:"role,omitempty"`
	// Nanoseconds since the epoch. The BSON date type only keeps
	// milliseconds, which is too coarse to keep a login burst ordered.
	Timestamp int64 `bson:"timestamp"`
}

func newAuthEventDocument(event *domain.AuthEvent) mongoAuthEvent {
	return mongoAuthEvent{
		ID:        event.ID,
		ContextID: event.ContextID,
		Kind:      string(event.Kind),
		Email:     event.Email,
		Role:      string(event.Role),
		Timestamp: event.Timestamp.UnixNano(),
	}
}

func (d mongoAuthEvent) toDomain() *domain.AuthEvent {
	return &domain.AuthEvent{
		ID:        d.ID,
		ContextID: d.ContextID,
		Kind:      domain.AuthEventKind(d.Kind),
		Email:     d.Email,
		Role:      domain.Role(d.Role),
		Timestamp: time.Unix(0, d.Timestamp).UTC(),
	}
}

func (r *MongoAuditRepository) InsertEvent(ctx context.Context, event *domain.AuthEvent) error {
	if _, err := r.coll.InsertOne(ctx, newAuthEventDocument(event)); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

func (r *MongoAuditRepository) ListRecent(ctx context.Context, limit int64) ([]*domain.AuthEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list auth events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*domain.AuthEvent
	for cursor.Next(ctx) {
		var doc mongoAuthEvent
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode auth event: %w", err)
		}
		events = append(events, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list auth events: %w", err)
	}
	return events, nil
}
