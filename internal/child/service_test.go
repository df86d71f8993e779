package child

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&Child{}, &Guardian{}, &Medication{}))
	return gdb
}

func createChild(t *testing.T, svc *Service) *Child {
	t.Helper()
	c, err := svc.Create(context.Background(), CreateChildInput{
		FirstName:   "Mia",
		LastName:    "Santos",
		DateOfBirth: time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC),
		Classroom:   "toddlers",
	})
	require.NoError(t, err)
	return c
}

func TestAddGuardianShowsUpOnProfile(t *testing.T) {
	svc := &Service{DB: newTestDB(t)}
	c := createChild(t, svc)
	ctx := context.Background()

	g, err := svc.AddGuardian(ctx, Guardian{
		ChildID:            c.ID,
		FirstName:          "Rosa",
		LastName:           "Santos",
		Relationship:       "mother",
		Phone:              "555-0101",
		IsEmergencyContact: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, g.ID)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Guardians, 1)
	require.Equal(t, "Rosa", got.Guardians[0].FirstName)
	require.True(t, got.Guardians[0].IsEmergencyContact)
}

func TestMarkAdministeredStampsMedication(t *testing.T) {
	svc := &Service{DB: newTestDB(t)}
	c := createChild(t, svc)
	ctx := context.Background()

	med, err := svc.AddMedication(ctx, Medication{
		ChildID: c.ID,
		Name:    "Amoxicillin",
		Dosage:  "5ml",
	})
	require.NoError(t, err)
	require.Nil(t, med.LastAdministered)

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, svc.MarkAdministered(ctx, med.ID, at))

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Medications, 1)
	require.NotNil(t, got.Medications[0].LastAdministered)
	require.WithinDuration(t, at, *got.Medications[0].LastAdministered, time.Second)
	require.Nil(t, got.Medications[0].LastNotified)
}

func TestMarkNotifiedStampsMedication(t *testing.T) {
	svc := &Service{DB: newTestDB(t)}
	c := createChild(t, svc)
	ctx := context.Background()

	med, err := svc.AddMedication(ctx, Medication{ChildID: c.ID, Name: "Zyrtec"})
	require.NoError(t, err)

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, svc.MarkNotified(ctx, med.ID, at))

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Medications[0].LastNotified)
	require.WithinDuration(t, at, *got.Medications[0].LastNotified, time.Second)
	require.Nil(t, got.Medications[0].LastAdministered)
}

func TestMarkAdministeredUnknownMedication(t *testing.T) {
	svc := &Service{DB: newTestDB(t)}
	err := svc.MarkAdministered(context.Background(), "nope", time.Now())
	require.ErrorIs(t, err, ErrNotFound)
}
