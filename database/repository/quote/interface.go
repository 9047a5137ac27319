package quoteRepo

import (
	"context"

	"weeklychef/database"
	"weeklychef/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// QuoteRepository owns durable quote-request rows. Status transitions past
// "pending" are operator-driven and never applied by the request path.
type QuoteRepository interface {
	Create(ctx context.Context, quote models.QuoteRequest) (string, error)
	GetByID(ctx context.Context, id string) (*models.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoQuoteRepo struct {
	coll *mongo.Collection
}

// NewMongoQuoteRepo returns a QuoteRepository backed by MongoDB.
func NewMongoQuoteRepo() QuoteRepository {
	db := database.MongoClient.Database("weeklychef")
	return &mongoQuoteRepo{
		coll: db.Collection("quote_requests"),
	}
}
