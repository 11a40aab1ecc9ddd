package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const ordersCollection = "orders"

type mongoStore struct {
	client *mongo.Client
	orders *mongo.Collection
}

func newMongoStore(client *mongo.Client, database string) *mongoStore {
	return &mongoStore{
		client: client,
		orders: client.Database(database).Collection(ordersCollection),
	}
}

// DialMongo connects and pings, so an unreachable server fails the attempt
// instead of surfacing on the first query.
func DialMongo(timeout time.Duration) DialFunc {
	return func(ctx context.Context, url string) (Store, error) {
		database, err := DatabaseName(url)
		if err != nil {
			return nil, err
		}
		opts := options.Client().ApplyURI(url)
		if timeout > 0 {
			opts.SetConnectTimeout(timeout).SetServerSelectionTimeout(timeout)
		}
		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			return nil, errors.Wrap(err, "connect mongo")
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, errors.Wrap(err, "ping mongo")
		}
		return newMongoStore(client, database), nil
	}
}

// FindOrders returns every document in the collection, in server order.
func (s *mongoStore) FindOrders(ctx context.Context) ([]Document, error) {
	cur, err := s.orders.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "find orders")
	}
	defer cur.Close(ctx)

	docs := make([]Document, 0)
	for cur.Next(ctx) {
		var d bson.D
		if err := cur.Decode(&d); err != nil {
			return nil, errors.Wrap(err, "decode order")
		}
		docs = append(docs, Document(d))
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate orders")
	}
	return docs, nil
}
