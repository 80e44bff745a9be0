package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const FlightEventsCollection = "flight_events"

func createIndexes() {
	createFlightEventsIndexes()
}

func createFlightEventsIndexes() {
	flightEventsCollection := GetCollection(FlightEventsCollection)

	eventIDIndexName := "EventID"
	departureIndexName := "FromCityDepartureTime"

	_, err := flightEventsCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Options: options.Index().SetName(eventIDIndexName).SetUnique(true),
			Keys:    bson.D{{Key: "eventid", Value: 1}},
		},
		{
			Options: &options.IndexOptions{
				Name: &departureIndexName,
			},
			Keys: bson.D{
				{Key: "fromcity", Value: 1},
				{Key: "departuretime", Value: 1},
			},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
