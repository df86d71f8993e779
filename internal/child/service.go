package child

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("child not found")

type Service struct {
	DB *gorm.DB
}

type CreateChildInput struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Classroom   string
	Allergies   []string
	PhotoURL    string
}

type UpdateChildInput struct {
	FirstName *string
	LastName  *string
	Classroom *string
	Allergies []string
	PhotoURL  *string
}

func (s *Service) Create(ctx context.Context, in CreateChildInput) (*Child, error) {
	c := Child{
		ID:          uuid.NewString(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
		Classroom:   in.Classroom,
		Allergies:   in.Allergies,
		PhotoURL:    in.PhotoURL,
	}
	if c.Allergies == nil {
		c.Allergies = []string{}
	}
	if err := s.DB.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns children ordered by last name, optionally scoped to one
// classroom.
func (s *Service) List(ctx context.Context, classroom string) ([]Child, error) {
	q := s.DB.WithContext(ctx).Model(&Child{})
	if classroom != "" && classroom != "all" {
		q = q.Where("classroom = ?", classroom)
	}
	var rows []Child
	if err := q.Order("last_name asc, first_name asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get loads one child with guardians and medications attached.
func (s *Service) Get(ctx context.Context, id string) (*Child, error) {
	var c Child
	err := s.DB.WithContext(ctx).
		Preload("Guardians").
		Preload("Medications").
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateChildInput) (*Child, error) {
	var c Child
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if in.FirstName != nil {
			c.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			c.LastName = *in.LastName
		}
		if in.Classroom != nil {
			c.Classroom = *in.Classroom
		}
		if in.Allergies != nil {
			c.Allergies = in.Allergies
		}
		if in.PhotoURL != nil {
			c.PhotoURL = *in.PhotoURL
		}
		return tx.Save(&c).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) AddGuardian(ctx context.Context, g Guardian) (*Guardian, error) {
	g.ID = uuid.NewString()
	if err := s.DB.WithContext(ctx).Create(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Service) AddMedication(ctx context.Context, m Medication) (*Medication, error) {
	m.ID = uuid.NewString()
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkAdministered stamps a standing medication after a dose is logged.
func (s *Service) MarkAdministered(ctx context.Context, medicationID string, at time.Time) error {
	return s.stamp(ctx, medicationID, "last_administered", at)
}

// MarkNotified stamps a standing medication after its reminder is dispatched.
func (s *Service) MarkNotified(ctx context.Context, medicationID string, at time.Time) error {
	return s.stamp(ctx, medicationID, "last_notified", at)
}

func (s *Service) stamp(ctx context.Context, medicationID, column string, at time.Time) error {
	res := s.DB.WithContext(ctx).Model(&Medication{}).
		Where("id = ?", medicationID).
		Update(column, at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
