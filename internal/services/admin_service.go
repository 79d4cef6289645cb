package services

import (
	"context"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"gorm.io/gorm"
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func (s *AdminService) Overview(ctx context.Context) (*dtos.Overview, error) {
	db := s.DB.WithContext(ctx)
	var o dtos.Overview
	if err := db.Model(&models.Job{}).Count(&o.TotalJobs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Job{}).Where("is_active = ?", true).Count(&o.ActiveJobs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).Count(&o.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Application{}).Count(&o.TotalApplications).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).Order("seq ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
