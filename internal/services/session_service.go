package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionService owns the single persisted "current user" slot. Every call
// overwrites the same slot, so all clients share one session.
type SessionService struct {
	DB      *gorm.DB
	Log     *zap.Logger
	Tracker *Tracker
	SlotKey string
}

func NewSessionService(db *gorm.DB, log *zap.Logger, tracker *Tracker, slotKey string) *SessionService {
	return &SessionService{
		DB:      db,
		Log:     log,
		Tracker: tracker,
		SlotKey: slotKey,
	}
}

// Login looks the user up by exact email. The password is accepted but never
// checked against anything.
func (s *SessionService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.Tracker.Do(ctx, func() error {
		err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %q: %w", email, ErrNotFound)
		}
		if err != nil {
			return err
		}
		return s.store(ctx, s.DB, &user)
	})
	if err != nil {
		s.Log.Debug("login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	s.Log.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return &user, nil
}

// Logout clears the slot; clearing an empty slot is not an error.
func (s *SessionService) Logout(ctx context.Context) error {
	err := s.DB.WithContext(ctx).Where("name = ?", s.SlotKey).Delete(&models.SessionSlot{}).Error
	if err != nil {
		return err
	}
	s.Log.Info("session cleared")
	return nil
}

// Register creates a user and logs them in. The new user is added to the
// users table, so a later Login with the same email succeeds.
func (s *SessionService) Register(ctx context.Context, req *dtos.RegisterRequest) (*models.User, error) {
	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleJobSeeker
	}
	if !role.Valid() {
		return nil, fmt.Errorf("role %q: %w", req.Role, ErrValidation)
	}

	var user models.User
	err := s.Tracker.Do(ctx, func() error {
		return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("email %q already in use: %w", req.Email, ErrConflict)
			}

			seq, id, err := database.NextID(tx, database.SeqUsers)
			if err != nil {
				return err
			}
			user = models.User{
				ID:        id,
				Seq:       seq,
				Email:     req.Email,
				Name:      req.Name,
				Role:      role,
				Company:   optional(req.Company),
				Title:     optional(req.Title),
				Location:  optional(req.Location),
				CreatedAt: time.Now().UTC(),
			}
			if err := tx.Create(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("email %q already in use: %w", req.Email, ErrConflict)
				}
				return err
			}
			return s.store(ctx, tx, &user)
		})
	})
	if err != nil {
		s.Log.Debug("registration failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	s.Log.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return &user, nil
}

// Current returns the user held in the slot, or ErrNoSession when it is empty.
func (s *SessionService) Current(ctx context.Context) (*models.User, error) {
	var slot models.SessionSlot
	err := s.DB.WithContext(ctx).Where("name = ?", s.SlotKey).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(slot.Payload), &user); err != nil {
		return nil, fmt.Errorf("decode session slot: %w", err)
	}
	return &user, nil
}

func (s *SessionService) store(ctx context.Context, db *gorm.DB, user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	slot := models.SessionSlot{
		Name:      s.SlotKey,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}
	return db.WithContext(ctx).Save(&slot).Error
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
