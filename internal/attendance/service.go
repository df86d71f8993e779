package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thecheetosfingers/Childmanagement/internal/child"
)

var (
	ErrAlreadyCheckedIn = errors.New("child already checked in")
	ErrNotCheckedIn     = errors.New("child is not checked in")
)

type Service struct {
	DB *gorm.DB
}

// CheckIn opens a record for the child. A second check-in while a record is
// still open is rejected rather than silently stacked.
func (s *Service) CheckIn(ctx context.Context, childID, staffID string) (*Record, error) {
	var rec Record
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open int64
		if err := tx.Model(&Record{}).
			Where("child_id = ? AND check_out IS NULL", childID).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrAlreadyCheckedIn
		}
		rec = Record{
			ID:          uuid.NewString(),
			ChildID:     childID,
			CheckIn:     time.Now().UTC(),
			CheckedInBy: staffID,
		}
		return tx.Create(&rec).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CheckOut closes the child's open record.
func (s *Service) CheckOut(ctx context.Context, childID, staffID string) (*Record, error) {
	var rec Record
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("child_id = ? AND check_out IS NULL", childID).
			Order("check_in desc").
			First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotCheckedIn
			}
			return err
		}
		now := time.Now().UTC()
		rec.CheckOut = &now
		rec.CheckedOutBy = &staffID
		return tx.Save(&rec).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListForDay returns the day's records, newest check-in first, optionally
// limited to one classroom.
func (s *Service) ListForDay(ctx context.Context, day time.Time, classroom string) ([]Record, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	q := s.DB.WithContext(ctx).Model(&Record{}).
		Where("check_in >= ? AND check_in < ?", start, end)
	if classroom != "" && classroom != "all" {
		q = q.Where("child_id IN (?)",
			s.DB.Model(&child.Child{}).Select("id").Where("classroom = ?", classroom))
	}

	var rows []Record
	if err := q.Order("check_in desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// StatsForDay counts the roster against the day's records.
func (s *Service) StatsForDay(ctx context.Context, day time.Time, classroom string) (Stats, error) {
	var stats Stats

	rosterQ := s.DB.WithContext(ctx).Model(&child.Child{})
	if classroom != "" && classroom != "all" {
		rosterQ = rosterQ.Where("classroom = ?", classroom)
	}
	var total int64
	if err := rosterQ.Count(&total).Error; err != nil {
		return stats, err
	}

	recs, err := s.ListForDay(ctx, day, classroom)
	if err != nil {
		return stats, err
	}

	stats.Total = int(total)
	stats = Tally(stats.Total, recs)
	return stats, nil
}

// Tally folds a day's records into stats for a roster of the given size.
// Split out from StatsForDay so it can be exercised without a database.
func Tally(total int, recs []Record) Stats {
	seen := make(map[string]bool, len(recs))
	out := Stats{Total: total}
	for _, r := range recs {
		if seen[r.ChildID] {
			continue
		}
		seen[r.ChildID] = true
		if r.CheckOut == nil {
			out.Present++
		} else {
			out.CheckedOut++
		}
	}
	out.Absent = total - out.Present - out.CheckedOut
	if out.Absent < 0 {
		out.Absent = 0
	}
	return out
}
