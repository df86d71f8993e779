package message

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("message not found")

type Service struct {
	DB *gorm.DB
}

type ListFilter struct {
	UnreadOnly bool
	Search     string
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Message, error) {
	q := s.DB.WithContext(ctx).Model(&Message{})
	if f.UnreadOnly {
		q = q.Where("read = false")
	}
	if f.Search != "" {
		pat := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(subject) LIKE ? OR LOWER(body) LIKE ? OR LOWER(sender) LIKE ?", pat, pat, pat)
	}

	var rows []Message
	if err := q.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get loads one message and marks it read, mirroring the inbox behavior of
// opening a thread.
func (s *Service) Get(ctx context.Context, id string) (*Message, error) {
	var m Message
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if m.Read {
			return nil
		}
		m.Read = true
		return tx.Model(&Message{}).Where("id = ?", id).Update("read", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Send(ctx context.Context, sender string, role Role, subject, body string) (*Message, error) {
	m := Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Role:      role,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&Message{}).Where("read = false").Count(&n).Error
	return n, err
}
