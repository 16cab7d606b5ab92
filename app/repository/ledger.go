package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kevinemt0605/vitalmoto/app/entity"
)

type LedgerFilter struct {
	UserID    string
	Reference string
	Limit     int64
	Offset    int64
}

// LedgerRepository owns the append-only payments collection. There is no
// unique index on reference here: two claims racing on the same unused
// reference can both land (the deployment may close that with an index, the
// code does not rely on it).
type LedgerRepository struct {
	collection *mongo.Collection
}

func NewLedgerRepository(db *mongo.Database) *LedgerRepository {
	return &LedgerRepository{collection: db.Collection(ledgerCollection)}
}

func (r *LedgerRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// FindApprovedByReference returns the approved entry holding the given bank
// reference, or nil when the reference has never been accepted locally.
func (r *LedgerRepository) FindApprovedByReference(ctx context.Context, reference string) (*entity.LedgerEntry, error) {
	filter := bson.M{
		"reference": reference,
		"status":    entity.LedgerStatusApproved,
	}

	var entry entity.LedgerEntry
	err := r.collection.FindOne(ctx, filter).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *LedgerRepository) List(ctx context.Context, filter LedgerFilter) ([]*entity.LedgerEntry, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	if filter.Reference != "" {
		query["reference"] = filter.Reference
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(filter.Limit).
		SetSkip(filter.Offset)

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]*entity.LedgerEntry, 0)
	for cursor.Next(ctx) {
		var entry entity.LedgerEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
