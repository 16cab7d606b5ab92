package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kevinemt0605/vitalmoto/app/entity"
)

type ServiceRecordRepository struct {
	collection *mongo.Collection
}

func NewServiceRecordRepository(db *mongo.Database) *ServiceRecordRepository {
	return &ServiceRecordRepository{collection: db.Collection(servicesCollection)}
}

// MarkPaymentVerified stamps a workshop job as paid and attaches the bank's
// raw reply. Returns ErrServiceRecordNotFound when the job does not exist;
// callers treat that as non-fatal.
func (r *ServiceRecordRepository) MarkPaymentVerified(ctx context.Context, id string, resp *entity.BankResponse, at time.Time) error {
	update := bson.M{"$set": bson.M{
		"status":      entity.ServiceStatusPaymentVerified,
		"paymentDate": at,
		"bdvData":     resp,
	}}

	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrServiceRecordNotFound
	}
	return nil
}
