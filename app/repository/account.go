package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kevinemt0605/vitalmoto/app/entity"
)

type AccountRepository struct {
	collection *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{collection: db.Collection(accountCollection)}
}

// MarkPaid flips the membership flag and stamps the payment on the profile.
// Returns ErrAccountNotFound when no profile document exists for the id.
func (r *AccountRepository) MarkPaid(ctx context.Context, id, reference string, at time.Time) error {
	update := bson.M{"$set": bson.M{
		"hasPaid":         true,
		"lastPaymentDate": at,
		"lastPaymentRef":  reference,
	}}

	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ListActiveIDs returns the ids of every account whose membership flag is
// currently set.
func (r *AccountRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"hasPaid": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := make([]string, 0)
	for cursor.Next(ctx) {
		var account entity.Account
		if err := cursor.Decode(&account); err != nil {
			return nil, err
		}
		ids = append(ids, account.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// ClearActive unsets the membership flag for one partition of account ids in
// a single bulk write and reports how many documents were modified.
func (r *AccountRepository) ClearActive(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(ids))
	for _, id := range ids {
		models = append(models, mongo.
			NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"hasPaid": false}}))
	}

	opts := options.BulkWrite().SetOrdered(false)
	result, err := r.collection.BulkWrite(ctx, models, opts)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
