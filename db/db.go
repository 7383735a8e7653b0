package db

import (
	"context"
	"encoding/base64"
	"log"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// client is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
)

// InitFirestore initializes and returns a Firestore client from the base64
// encoded FIREBASE_CREDENTIALS env var. Callers fall back to the in-memory
// store when this fails.
func InitFirestore() (*firestore.Client, error) {
	var initErr error

	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			initErr = err
			return
		}

		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			initErr = err
			return
		}

		client, initErr = app.Firestore(context.Background())
	})

	if initErr != nil {
		log.Printf("Firestore init failed: %v", initErr)
	}
	return client, initErr
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}
