package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/thecheetosfingers/Childmanagement/internal/child"
)

// Worker drains due jobs on a short poll. Today the only job type is the
// medication reminder; the dispatch is a log line the front desk tails, and
// the medication row is stamped so the schedule shows it fired.
type Worker struct {
	ID       string
	Repo     *Repo
	DB       *gorm.DB
	Children *child.Service
	Log      *zap.SugaredLogger
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(800 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Repo.Claim(w.ID)
			if err != nil {
				w.Log.Warnw("worker claim error", "err", err)
				continue
			}
			if job == nil {
				continue
			}
			w.handle(ctx, job)
		}
	}
}

func (w *Worker) handle(ctx context.Context, job *Job) {
	switch job.Type {
	case TypeMedReminder:
		w.handleMedReminder(ctx, job)
	default:
		_ = w.Repo.MarkFailed(job.ID, "unknown job type")
	}
}

func (w *Worker) handleMedReminder(ctx context.Context, job *Job) {
	type payload struct {
		MedicationID string `json:"medication_id"`
	}
	var p payload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		_ = w.Repo.MarkFailed(job.ID, "bad payload")
		return
	}

	var med child.Medication
	if err := w.DB.WithContext(ctx).Where("id = ?", p.MedicationID).First(&med).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// medication deleted; nothing to remind about
			_ = w.Repo.MarkDone(job.ID)
			return
		}
		w.retry(job, "db read error")
		return
	}

	if med.EndDate != nil && med.EndDate.Before(time.Now()) {
		_ = w.Repo.MarkDone(job.ID)
		return
	}

	w.Log.Infow("medication due",
		"child_id", med.ChildID,
		"medication", med.Name,
		"dosage", med.Dosage,
		"frequency", med.Frequency,
	)

	if err := w.Children.MarkNotified(ctx, med.ID, time.Now().UTC()); err != nil {
		if errors.Is(err, child.ErrNotFound) {
			// deleted after the read above; nothing left to stamp
			_ = w.Repo.MarkDone(job.ID)
			return
		}
		w.retry(job, "stamp notified error")
		return
	}
	_ = w.Repo.MarkDone(job.ID)
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Repo.MarkFailed(job.ID, errMsg)
		return
	}

	sec := math.Min(math.Pow(2, float64(attempts)), 600)
	next := time.Now().Add(time.Duration(sec) * time.Second)

	_ = w.Repo.RetryLater(job.ID, attempts, next, errMsg)
}
