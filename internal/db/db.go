package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/thecheetosfingers/Childmanagement/internal/activity"
	"github.com/thecheetosfingers/Childmanagement/internal/attendance"
	"github.com/thecheetosfingers/Childmanagement/internal/auth"
	"github.com/thecheetosfingers/Childmanagement/internal/child"
	"github.com/thecheetosfingers/Childmanagement/internal/jobs"
	"github.com/thecheetosfingers/Childmanagement/internal/message"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&auth.Staff{},
		&child.Child{},
		&child.Guardian{},
		&child.Medication{},
		&activity.Record{},
		&attendance.Record{},
		&message.Message{},
		&jobs.Job{},
	); err != nil {
		return err
	}

	// Timeline reads: per-child, newest first.
	if err := gdb.Exec(`create index if not exists idx_activities_child_ts on activities(child_id, timestamp desc);`).Error; err != nil {
		return err
	}

	// Kind filter on the activity feed.
	if err := gdb.Exec(`create index if not exists idx_activities_type on activities(type);`).Error; err != nil {
		return err
	}

	// Caption search goes through the details jsonb.
	if err := gdb.Exec(`create index if not exists idx_activities_details on activities using gin (details);`).Error; err != nil {
		return err
	}

	// One open attendance record per child.
	if err := gdb.Exec(`
create unique index if not exists uq_attendance_open
on attendance_records(child_id)
where check_out is null;
`).Error; err != nil {
		return err
	}

	stmts := []string{
		`create index if not exists idx_attendance_checkin on attendance_records(check_in desc);`,
		`create index if not exists idx_messages_unread on messages(read, created_at desc);`,
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
