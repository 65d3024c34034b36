package testutil

import (
	"os"
	"testing"
)

const DefaultDatabaseName = "HotelManagementTest"

// RequireMongo returns the MongoDB target for integration tests, skipping
// the test when TEST_MONGO_URI is not set.
func RequireMongo(t *testing.T) (uri, dbName string) {
	t.Helper()

	uri = os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set, skipping store integration tests")
	}

	dbName = getEnv("TEST_DB_NAME", DefaultDatabaseName)
	return uri, dbName
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
