package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

const startTimeKey = "metrics:start_time"

// RegisterMetricsCallbacks times every select, insert, update and delete
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()

	if err := cb.Query().Before("gorm:query").Register("metrics:select_before", markStart); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("metrics:select_after", observer("select", recorder)); err != nil {
		return err
	}
	if err := cb.Create().Before("gorm:create").Register("metrics:insert_before", markStart); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("metrics:insert_after", observer("insert", recorder)); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("metrics:update_before", markStart); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("metrics:update_after", observer("update", recorder)); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("metrics:delete_before", markStart); err != nil {
		return err
	}
	return cb.Delete().After("gorm:delete").Register("metrics:delete_after", observer("delete", recorder))
}

func markStart(tx *gorm.DB) {
	tx.InstanceSet(startTimeKey, time.Now())
}

func observer(operation string, recorder MetricsRecorder) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		observe(tx, operation, recorder)
	}
}

func observe(tx *gorm.DB, operation string, recorder MetricsRecorder) {
	v, ok := tx.InstanceGet(startTimeKey)
	if !ok {
		return
	}
	start, ok := v.(time.Time)
	if !ok {
		return
	}
	table := tx.Statement.Table
	if table == "" {
		table = "unknown"
	}
	err := tx.Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// a miss is an answer, not a failed query
		err = nil
	}
	recorder.RecordDBQuery(operation, table, time.Since(start), err)
}

// StartDBStatsCollector pushes connection pool stats every interval until ctx is done
func StartDBStatsCollector(ctx context.Context, db *gorm.DB, recorder MetricsRecorder, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-ctx.Done():
				return
			}
		}
	}()
}
