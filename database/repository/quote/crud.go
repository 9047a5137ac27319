package quoteRepo

import (
	"context"
	"errors"
	"time"

	"weeklychef/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no quote request matches the given id.
var ErrNotFound = errors.New("quote request not found")

// Create inserts a new quote request and returns its ID.
func (r *mongoQuoteRepo) Create(ctx context.Context, quote models.QuoteRequest) (string, error) {
	if quote.ID == "" {
		quote.ID = uuid.New().String()
	}
	if quote.Status == "" {
		quote.Status = models.QuoteStatusPending
	}
	quote.CreatedAt = time.Now()
	quote.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, quote)
	if err != nil {
		return "", err
	}
	return quote.ID, nil
}

// GetByID returns a quote request by its ID.
func (r *mongoQuoteRepo) GetByID(ctx context.Context, id string) (*models.QuoteRequest, error) {
	var quote models.QuoteRequest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&quote)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// UpdateStatus moves a quote request to a new operator-driven status.
func (r *mongoQuoteRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
