package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"kanban-board-api/internal/client"
)

// ImagePrefix is the store prefix swept by the cleanup job
const ImagePrefix = "tasks/"

// ImageKeySource reports every image key still referenced by a task
type ImageKeySource interface {
	AllImageKeys(ctx context.Context) ([]string, error)
}

// OrphanCleanupJob removes stored task images that no task references anymore.
// Files are left behind when a request fails between storing a new image and
// deleting the replaced one.
type OrphanCleanupJob struct {
	tasks   ImageKeySource
	store   client.FileStore
	logger  *zap.Logger
	timeout time.Duration
}

// NewOrphanCleanupJob creates a new OrphanCleanupJob instance
func NewOrphanCleanupJob(tasks ImageKeySource, store client.FileStore, logger *zap.Logger) *OrphanCleanupJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrphanCleanupJob{
		tasks:   tasks,
		store:   store,
		logger:  logger,
		timeout: 5 * time.Minute,
	}
}

// Schedule registers the job on c using a standard cron spec or descriptor such as "@daily"
func (j *OrphanCleanupJob) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddJob(spec, j)
}

// Run implements cron.Job
func (j *OrphanCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if _, err := j.Sweep(ctx); err != nil {
		j.logger.Error("Orphan image cleanup failed", zap.Error(err))
	}
}

// Sweep deletes unreferenced images and returns the deleted keys.
// The store is listed before references are loaded, so an image committed
// while the sweep runs is seen as referenced.
func (j *OrphanCleanupJob) Sweep(ctx context.Context) ([]string, error) {
	j.logger.Info("Starting orphan image cleanup")

	stored, err := j.store.List(ctx, ImagePrefix)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		j.logger.Info("No stored images found")
		return nil, nil
	}

	referenced, err := j.tasks.AllImageKeys(ctx)
	if err != nil {
		return nil, err
	}
	inUse := make(map[string]struct{}, len(referenced))
	for _, key := range referenced {
		inUse[key] = struct{}{}
	}

	var deleted []string
	failCount := 0
	for _, key := range stored {
		if _, ok := inUse[key]; ok {
			continue
		}
		if err := j.store.Delete(ctx, key); err != nil {
			j.logger.Error("Failed to delete orphaned image",
				zap.String("key", key),
				zap.Error(err),
			)
			failCount++
			continue
		}
		deleted = append(deleted, key)
		j.logger.Debug("Deleted orphaned image", zap.String("key", key))
	}

	j.logger.Info("Orphan image cleanup completed",
		zap.Int("stored", len(stored)),
		zap.Int("referenced", len(referenced)),
		zap.Int("deleted", len(deleted)),
		zap.Int("failed", failCount),
	)
	return deleted, nil
}
