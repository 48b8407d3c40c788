package service

import (
	"context"

	"go.uber.org/zap"

	"kanban-board-api/internal/client"
)

// removeImages deletes stored files after their rows are gone. Failures are
// logged only; the orphan cleanup job picks up anything left behind.
func removeImages(ctx context.Context, store client.FileStore, logger *zap.Logger, keys []string) {
	if store == nil {
		return
	}
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := store.Delete(ctx, key); err != nil {
			logger.Warn("Failed to delete image", zap.String("key", key), zap.Error(err))
		}
	}
}

func imageURL(store client.FileStore, key *string) string {
	if store == nil || key == nil || *key == "" {
		return ""
	}
	return store.URL(*key)
}
