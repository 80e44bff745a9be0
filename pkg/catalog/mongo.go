package catalog

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/travigo/flightsearch/pkg/ctdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProvider struct {
	Collection *mongo.Collection
}

func (m *MongoProvider) ListAll(ctx context.Context) ([]*ctdf.FlightEvent, error) {
	opts := options.Find().SetProjection(bson.D{
		bson.E{Key: "_id", Value: 0},
	})

	cursor, err := m.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, unavailable("find flight events: %s", err)
	}

	events := []*ctdf.FlightEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, unavailable("decode flight events: %s", err)
	}

	return events, nil
}

// Import upserts the events into the collection keyed on their event id
func (m *MongoProvider) Import(ctx context.Context, events []*ctdf.FlightEvent) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}

	var operations []mongo.WriteModel

	for _, event := range events {
		operation := mongo.NewReplaceOneModel()
		operation.SetFilter(bson.M{"eventid": event.EventID})
		operation.SetReplacement(event)
		operation.SetUpsert(true)

		operations = append(operations, operation)
	}

	result, err := m.Collection.BulkWrite(ctx, operations, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}

	log.Info().
		Int64("upserted", result.UpsertedCount).
		Int64("matched", result.MatchedCount).
		Int64("modified", result.ModifiedCount).
		Msg("Imported flight events")

	return importedCount(result), nil
}

// importedCount counts every event written or already present unchanged
func importedCount(result *mongo.BulkWriteResult) int64 {
	return result.MatchedCount + result.UpsertedCount
}
