package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/backend-server/accounts-api/internal/core/domain"
)

const registrationLogsCollection = "registration_logs"

// MongoAuditSink appends registration entries to an append-only collection.
// There is no read path in the service; the collection exists for operators.
type MongoAuditSink struct {
	coll *mongo.Collection
}

func NewAuditSink(db *mongo.Database) *MongoAuditSink {
	return &MongoAuditSink{coll: db.Collection(registrationLogsCollection)}
}

type registrationDoc struct {
	UserID    string `bson:"user_id"`
	UserName  string `bson:"user_name"`
	Email     string `bson:"email"`
	Timestamp string `bson:"timestamp"`
	IP        string `bson:"ip,omitempty"`
}

func (s *MongoAuditSink) Append(ctx context.Context, entry domain.RegistrationEntry) error {
	doc := registrationDoc{
		UserID:    entry.UserID,
		UserName:  entry.UserName,
		Email:     entry.Email,
		Timestamp: entry.Timestamp.UTC().Format(time.RFC3339),
		IP:        entry.IP,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert registration log: %w", err)
	}
	return nil
}
