// Package catalog holds the static seed dataset the board starts from.
package catalog

import (
	"fmt"
	"time"

	"github.com/justsurfingit/jobboard/internal/models"
	"go.uber.org/multierr"
)

var Categories = []string{
	"Engineering",
	"Design",
	"Marketing",
	"Sales",
	"Customer Service",
	"Operations",
	"Finance",
	"HR",
	"Product",
	"Legal",
}

var JobTypes = []models.JobType{
	models.JobTypeFullTime,
	models.JobTypePartTime,
	models.JobTypeContract,
	models.JobTypeRemote,
}

var Locations = []string{
	"San Francisco, CA",
	"New York, NY",
	"Seattle, WA",
	"Austin, TX",
	"Chicago, IL",
	"Los Angeles, CA",
	"Boston, MA",
	"Remote",
}

type Catalog struct {
	Users        []models.User
	Jobs         []models.Job
	Applications []models.Application
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func str(s string) *string { return &s }

// Default returns a fresh copy of the seed data; callers may mutate it.
func Default() Catalog {
	return Catalog{
		Users: []models.User{
			{ID: "1", Seq: 1, Email: "employer@example.com", Name: "Tech Solutions Inc.", Role: models.RoleEmployer, Company: str("Tech Solutions Inc."), Location: str("San Francisco, CA"), CreatedAt: date("2023-01-15")},
			{ID: "2", Seq: 2, Email: "jobseeker@example.com", Name: "John Doe", Role: models.RoleJobSeeker, Title: str("Software Developer"), Location: str("New York, NY"), CreatedAt: date("2023-02-10")},
			{ID: "3", Seq: 3, Email: "admin@example.com", Name: "Admin User", Role: models.RoleAdmin, CreatedAt: date("2023-01-01")},
		},
		Jobs: []models.Job{
			{
				ID: "1", Seq: 1,
				Title:       "Senior Frontend Developer",
				Company:     "Tech Solutions Inc.",
				Location:    "San Francisco, CA",
				Description: "We are looking for an experienced Frontend Developer proficient in React, TypeScript, and modern CSS frameworks to join our growing team.",
				Requirements: []string{
					"Minimum 4 years of experience with React",
					"Strong TypeScript skills",
					"Experience with modern CSS frameworks like Tailwind",
					"Knowledge of state management solutions",
					"Bachelor degree in Computer Science or related field",
				},
				Salary:     str("$120,000 - $150,000"),
				Category:   "Engineering",
				Type:       models.JobTypeFullTime,
				EmployerID: "1",
				CreatedAt:  date("2023-05-15"),
				Deadline:   datePtr("2023-07-15"),
				IsActive:   true,
			},
			{
				ID: "2", Seq: 2,
				Title:       "Backend Developer",
				Company:     "Data Systems Co.",
				Location:    "Remote",
				Description: "Looking for a backend developer with strong Node.js skills to help build scalable APIs and microservices.",
				Requirements: []string{
					"Experience with Node.js and Express",
					"Knowledge of SQL and NoSQL databases",
					"Understanding of microservices architecture",
					"Good communication skills",
				},
				Salary:     str("$100,000 - $130,000"),
				Category:   "Engineering",
				Type:       models.JobTypeRemote,
				EmployerID: "1",
				CreatedAt:  date("2023-05-20"),
				Deadline:   datePtr("2023-07-20"),
				IsActive:   true,
			},
			{
				ID: "3", Seq: 3,
				Title:       "UX/UI Designer",
				Company:     "Creative Agency Ltd",
				Location:    "Los Angeles, CA",
				Description: "Join our creative team to design beautiful and functional user interfaces for web and mobile applications.",
				Requirements: []string{
					"Portfolio demonstrating UI/UX skills",
					"Experience with Figma and Adobe Creative Suite",
					"Understanding of user-centered design principles",
					"Knowledge of frontend implementation constraints",
				},
				Salary:     str("$90,000 - $120,000"),
				Category:   "Design",
				Type:       models.JobTypeFullTime,
				EmployerID: "1",
				CreatedAt:  date("2023-05-25"),
				Deadline:   datePtr("2023-07-25"),
				IsActive:   true,
			},
			{
				ID: "4", Seq: 4,
				Title:       "DevOps Engineer",
				Company:     "Cloud Services Inc.",
				Location:    "Seattle, WA",
				Description: "Help us build and maintain our cloud infrastructure and deployment pipelines.",
				Requirements: []string{
					"Experience with AWS or Azure",
					"Knowledge of Docker and Kubernetes",
					"Familiarity with CI/CD pipelines",
					"Linux system administration skills",
				},
				Salary:     str("$130,000 - $160,000"),
				Category:   "Operations",
				Type:       models.JobTypeFullTime,
				EmployerID: "1",
				CreatedAt:  date("2023-06-01"),
				Deadline:   datePtr("2023-08-01"),
				IsActive:   true,
			},
			{
				ID: "5", Seq: 5,
				Title:       "Marketing Specialist",
				Company:     "Growth Hackers",
				Location:    "Chicago, IL",
				Description: "Join our marketing team to create and execute digital marketing campaigns.",
				Requirements: []string{
					"Experience with digital marketing channels",
					"Knowledge of SEO and SEM",
					"Data analysis skills",
					"Creative problem solving",
				},
				Salary:     str("$70,000 - $90,000"),
				Category:   "Marketing",
				Type:       models.JobTypePartTime,
				EmployerID: "1",
				CreatedAt:  date("2023-06-05"),
				Deadline:   datePtr("2023-08-05"),
				IsActive:   true,
			},
			{
				ID: "6", Seq: 6,
				Title:       "Product Manager",
				Company:     "Tech Solutions Inc.",
				Location:    "San Francisco, CA",
				Description: "We need an experienced product manager to lead the development of our SaaS products.",
				Requirements: []string{
					"Experience managing software products",
					"Strong communication and leadership skills",
					"Ability to work with technical and non-technical stakeholders",
					"Agile/Scrum experience",
				},
				Salary:     str("$130,000 - $160,000"),
				Category:   "Product",
				Type:       models.JobTypeFullTime,
				EmployerID: "1",
				CreatedAt:  date("2023-06-10"),
				Deadline:   datePtr("2023-08-10"),
				IsActive:   true,
			},
		},
		Applications: []models.Application{
			{
				ID: "1", Seq: 1,
				JobID:       "1",
				UserID:      "2",
				Name:        "John Doe",
				Email:       "john.doe@example.com",
				CoverLetter: "I am excited to apply for this position as I have extensive experience with React and TypeScript...",
				ResumeURL:   str("https://example.com/resume/johndoe.pdf"),
				Status:      models.StatusPending,
				CreatedAt:   date("2023-06-01"),
			},
			{
				ID: "2", Seq: 2,
				JobID:       "2",
				UserID:      "2",
				Name:        "John Doe",
				Email:       "john.doe@example.com",
				CoverLetter: "I believe my backend development skills would be a perfect match for this role...",
				ResumeURL:   str("https://example.com/resume/johndoe.pdf"),
				Status:      models.StatusReviewed,
				CreatedAt:   date("2023-06-02"),
			},
		},
	}
}

// Validate checks id and email uniqueness across the catalog and reports every
// violation it finds.
func (c Catalog) Validate() error {
	var err error

	userIDs := map[string]bool{}
	emails := map[string]bool{}
	for _, u := range c.Users {
		if userIDs[u.ID] {
			err = multierr.Append(err, fmt.Errorf("duplicate user id %q", u.ID))
		}
		userIDs[u.ID] = true
		if emails[u.Email] {
			err = multierr.Append(err, fmt.Errorf("duplicate user email %q", u.Email))
		}
		emails[u.Email] = true
		if !u.Role.Valid() {
			err = multierr.Append(err, fmt.Errorf("user %q has invalid role %q", u.ID, u.Role))
		}
	}

	jobIDs := map[string]bool{}
	for _, j := range c.Jobs {
		if jobIDs[j.ID] {
			err = multierr.Append(err, fmt.Errorf("duplicate job id %q", j.ID))
		}
		jobIDs[j.ID] = true
		if !j.Type.Valid() {
			err = multierr.Append(err, fmt.Errorf("job %q has invalid type %q", j.ID, j.Type))
		}
	}

	appIDs := map[string]bool{}
	for _, a := range c.Applications {
		if appIDs[a.ID] {
			err = multierr.Append(err, fmt.Errorf("duplicate application id %q", a.ID))
		}
		appIDs[a.ID] = true
		if !a.Status.Valid() {
			err = multierr.Append(err, fmt.Errorf("application %q has invalid status %q", a.ID, a.Status))
		}
	}

	return err
}
