package content

import (
	"strings"
	"time"
)

// Record is implemented by every collection item. WithRecordID returns a copy
// of the record carrying id.
type Record[T any] interface {
	RecordID() string
	WithRecordID(id string) T
}

// Project is a portfolio entry.
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Category        string   `json:"category"`
	Role            []string `json:"role"`
	Tags            []string `json:"tags"`
	Technologies    []string `json:"technologies"`
	Image           string   `json:"image,omitempty"`
	GithubURL       string   `json:"githubUrl,omitempty"`
	LiveURL         string   `json:"liveUrl,omitempty"`
	Featured        bool     `json:"featured"`
	Year            string   `json:"year,omitempty"`
}

func (p Project) RecordID() string { return p.ID }

func (p Project) WithRecordID(id string) Project {
	p.ID = id
	return p
}

// FieldValues exposes fields by their JSON name for search.
func (p Project) FieldValues(name string) []string {
	switch name {
	case "id":
		return []string{p.ID}
	case "title":
		return []string{p.Title}
	case "description":
		return []string{p.Description}
	case "longDescription":
		return []string{p.LongDescription}
	case "category":
		return []string{p.Category}
	case "role":
		return p.Role
	case "tags":
		return p.Tags
	case "technologies":
		return p.Technologies
	case "year":
		return []string{p.Year}
	}
	return nil
}

// Service is an offering listed on the services page.
type Service struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon,omitempty"`
	Category     string   `json:"category"`
	Features     []string `json:"features"`
	Price        string   `json:"price,omitempty"`
	DeliveryTime string   `json:"deliveryTime,omitempty"`
}

func (s Service) RecordID() string { return s.ID }

func (s Service) WithRecordID(id string) Service {
	s.ID = id
	return s
}

func (s Service) FieldValues(name string) []string {
	switch name {
	case "id":
		return []string{s.ID}
	case "title":
		return []string{s.Title}
	case "description":
		return []string{s.Description}
	case "category":
		return []string{s.Category}
	case "features":
		return s.Features
	}
	return nil
}

// Experience is one work or education entry.
type Experience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	Type         string   `json:"type"` // "work", "education", "certification"
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description,omitempty"`
	Logo         string   `json:"logo,omitempty"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

func (e Experience) RecordID() string { return e.ID }

func (e Experience) WithRecordID(id string) Experience {
	e.ID = id
	return e
}

func (e Experience) FieldValues(name string) []string {
	switch name {
	case "id":
		return []string{e.ID}
	case "title":
		return []string{e.Title}
	case "company":
		return []string{e.Company}
	case "location":
		return []string{e.Location}
	case "type":
		return []string{e.Type}
	case "description":
		return []string{e.Description}
	case "achievements":
		return e.Achievements
	case "technologies":
		return e.Technologies
	}
	return nil
}

// Message is a contact form submission. Only Read changes after creation.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

func (m Message) RecordID() string { return m.ID }

func (m Message) WithRecordID(id string) Message {
	m.ID = id
	return m
}

func (m Message) FieldValues(name string) []string {
	switch name {
	case "id":
		return []string{m.ID}
	case "name":
		return []string{m.Name}
	case "email":
		return []string{m.Email}
	case "subject":
		return []string{m.Subject}
	case "message":
		return []string{m.Message}
	case "status":
		if m.Read {
			return []string{"read"}
		}
		return []string{"unread"}
	}
	return nil
}

// Settings is the site-wide singleton.
type Settings struct {
	SiteTitle string `json:"siteTitle"`
	Tagline   string `json:"tagline"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	Available bool   `json:"available"`
	ResumeURL string `json:"resumeUrl,omitempty"`
	Social    Social `json:"social"`
}

type Social struct {
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Submission is what the public contact form posts.
type Submission struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"max=300"`
	Message string `json:"message" binding:"required,max=10000"`
}

// Normalize trims the free-text fields and lower-cases the email.
func (s Submission) Normalize() Submission {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
	return s
}
