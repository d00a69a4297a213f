package handlers

import "context"

// DocumentStore is the persistence collaborator. It is nil when the
// startup connection failed; routes must keep working in that state.
type DocumentStore interface {
	Name() string
	CreateDocument(ctx context.Context, collection string, doc any) (string, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
}
