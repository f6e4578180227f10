package mongo_test

import (
	"context"
	"testing"

	"task-tracker/pkg/mongo"
)

func TestConnectRequiresURI(t *testing.T) {
	if _, err := mongo.Connect(context.Background(), mongo.Config{Database: "taskManager"}); err == nil {
		t.Fatal("expected error for empty uri")
	}
}

func TestDisconnectNil(t *testing.T) {
	if err := mongo.Disconnect(nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
