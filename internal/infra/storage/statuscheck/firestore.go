package statuscheck

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/m04kA/qwiky-admin-proxy/internal/domain"
)

// firestoreDocument документ status check в коллекции Firestore
type firestoreDocument struct {
	ID         string    `firestore:"id"`
	ClientName string    `firestore:"client_name"`
	Timestamp  time.Time `firestore:"timestamp"`
}

// FirestoreRepository репозиторий status check записей в Firestore
type FirestoreRepository struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreRepository создает репозиторий поверх коллекции Firestore
func NewFirestoreRepository(client *firestore.Client, collection string) *FirestoreRepository {
	return &FirestoreRepository{
		client:     client,
		collection: collection,
	}
}

// Create сохраняет запись, ID записи используется как ID документа
func (r *FirestoreRepository) Create(ctx context.Context, check *domain.StatusCheck) error {
	doc := firestoreDocument{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp,
	}

	if _, err := r.client.Collection(r.collection).Doc(check.ID).Create(ctx, doc); err != nil {
		return fmt.Errorf("%w: Create - firestore create: %v", ErrExecQuery, err)
	}
	return nil
}

// List возвращает до limit документов коллекции
func (r *FirestoreRepository) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	snapshots, err := r.client.Collection(r.collection).Limit(limit).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: List - firestore query: %v", ErrExecQuery, err)
	}

	checks := make([]*domain.StatusCheck, 0, len(snapshots))
	for _, snap := range snapshots {
		var doc firestoreDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("%w: List - decode document %s: %v", ErrScanRow, snap.Ref.ID, err)
		}
		checks = append(checks, &domain.StatusCheck{
			ID:         doc.ID,
			ClientName: doc.ClientName,
			Timestamp:  doc.Timestamp.UTC(),
		})
	}

	return checks, nil
}
