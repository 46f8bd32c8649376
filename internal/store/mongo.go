// Package store manages the MongoDB connection and the connectivity report
// served by the diagnostics endpoint.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// maxReportedCollections caps the collection list in the diagnostics report.
const maxReportedCollections = 10

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best effort; the connect already failed
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client.Database(dbName), nil
}

// Report describes backend and database connectivity.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url,omitempty"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnose builds a connectivity report. It never fails: ping or listing
// errors degrade to partial status text instead.
func Diagnose(ctx context.Context, db *mongo.Database, urlConfigured bool) Report {
	report := Report{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if db == nil {
		return report
	}

	if urlConfigured {
		report.DatabaseURL = "set"
	} else {
		report.DatabaseURL = "not set"
	}

	if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
		report.Database = "error: " + truncate(err.Error(), 50)
		return report
	}

	report.Database = "connected"
	report.DatabaseName = db.Name()
	report.ConnectionStatus = "connected"

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		report.Database = "connected but error: " + truncate(err.Error(), 50)
		return report
	}

	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	report.Collections = names

	return report
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
