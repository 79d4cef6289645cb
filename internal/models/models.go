package models

import (
	"time"
)

type Role string

const (
	RoleEmployer  Role = "employer"
	RoleJobSeeker Role = "jobSeeker"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployer, RoleJobSeeker, RoleAdmin:
		return true
	}
	return false
}

type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote:
		return true
	}
	return false
}

// ApplicationStatus is a free-form tag: any status may follow any other.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Seq       uint64    `gorm:"index" json:"-"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	Role      Role      `gorm:"not null" json:"role"`
	Company   *string   `json:"company,omitempty"`
	Title     *string   `json:"title,omitempty"`
	Location  *string   `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Job struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Seq          uint64     `gorm:"index" json:"-"`
	Title        string     `gorm:"not null" json:"title"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	Description  string     `gorm:"type:text" json:"description"`
	Requirements []string   `gorm:"type:text;serializer:json" json:"requirements"`
	Salary       *string    `json:"salary,omitempty"`
	Category     string     `gorm:"index" json:"category"`
	Type         JobType    `gorm:"index" json:"type"`
	EmployerID   string     `gorm:"index" json:"employer_id"`
	CreatedAt    time.Time  `json:"created_at"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	IsActive     bool       `json:"is_active"`
}

// Application keeps a snapshot of the applicant's name and email taken at
// submission. JobID and UserID are plain references; nothing cascades.
type Application struct {
	ID          string            `gorm:"primaryKey" json:"id"`
	Seq         uint64            `gorm:"index" json:"-"`
	JobID       string            `gorm:"index;not null" json:"job_id"`
	UserID      string            `gorm:"index" json:"user_id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	ResumeURL   *string           `json:"resume_url,omitempty"`
	Status      ApplicationStatus `gorm:"index;not null" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// SessionSlot is the single persisted "current user" record. A missing row
// means nobody is logged in.
type SessionSlot struct {
	Name      string `gorm:"primaryKey"`
	Payload   string `gorm:"type:text"`
	UpdatedAt time.Time
}

// Sequence backs monotonic id assignment; values are never handed out twice.
type Sequence struct {
	Name  string `gorm:"primaryKey"`
	Value uint64
}

const (
	JobEventCreated = "JOB_CREATED"
	JobEventUpdated = "JOB_UPDATED"
	JobEventDeleted = "JOB_DELETED"
)

// JobEvent describes a change to the job collection. It is broadcast to feed
// subscribers and never stored.
type JobEvent struct {
	EventType string    `json:"event_type"`
	JobID     string    `json:"job_id"`
	Job       *Job      `json:"job,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
