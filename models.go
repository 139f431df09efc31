// models.go - content record types and their derivations
package main

import (
	"fmt"
	"strings"
	"time"
)

// Collection names in the content store. The JSON field names on the
// record types are the wire contract: the admin editors write them and
// the public pages read them back, so renaming a field breaks both.
const (
	collectionAbout    = "about"
	collectionProjects = "projects"
	collectionSkills   = "skills"
	collectionBlog     = "blogPosts"
)

// aboutKey is the fixed key of the singleton about record.
const aboutKey = "main"

// About holds the single personal-info record. Writes are full
// replacements, never merges.
type About struct {
	Bio          string `json:"bio" form:"bio" binding:"required"`
	ProfileImage string `json:"profileImage" form:"profileImage"`
	ResumeURL    string `json:"resumeUrl" form:"resumeUrl"`
	Linkedin     string `json:"linkedin" form:"linkedin"`
	Github       string `json:"github" form:"github"`
	Email        string `json:"email" form:"email"`
	Location     string `json:"location" form:"location"`
}

// Project is a portfolio entry. Projects are only ever added through
// the admin console; there is no edit or delete affordance for them.
type Project struct {
	ID           string   `json:"-"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageID      string   `json:"imageId"`
	GithubURL    string   `json:"githubUrl"`
	DemoURL      string   `json:"demoUrl"`
	// Order is count+1 at creation time and is never reassigned, so
	// deletions leave gaps. It is written but not used to sort the
	// fetched list.
	Order int `json:"order"`
}

func (p Project) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("project title is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("project description is required")
	}
	return nil
}

// ImageURL resolves the stored drive file id to a displayable URL.
// Only the id is persisted, not the URL.
func (p Project) ImageURL() string {
	if p.ImageID == "" {
		return ""
	}
	return driveImageURL(p.ImageID)
}

func driveImageURL(fileID string) string {
	return "https://drive.google.com/uc?export=view&id=" + fileID
}

// Skill categories accepted by the admin editor.
var skillCategories = []string{"Frontend", "Backend", "Database", "DevOps", "Tools"}

type Skill struct {
	ID       string `json:"-"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Icon     string `json:"icon"`
}

func (s Skill) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("skill name is required")
	}
	if !validSkillCategory(s.Category) {
		return fmt.Errorf("unknown skill category %q", s.Category)
	}
	if err := validateSkillLevel(s.Level); err != nil {
		return err
	}
	return nil
}

func validSkillCategory(category string) bool {
	for _, c := range skillCategories {
		if c == category {
			return true
		}
	}
	return false
}

func validateSkillLevel(level int) error {
	if level < 1 || level > 5 {
		return fmt.Errorf("skill level must be between 1 and 5, got %d", level)
	}
	return nil
}

// Blog post status values.
const (
	statusDraft     = "draft"
	statusPublished = "published"
)

type BlogPost struct {
	ID          string   `json:"-"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	PublishDate string   `json:"publishDate"`
	Status      string   `json:"status"`
	// ReadingTime is derived from Content at creation time.
	ReadingTime int `json:"readingTime"`
}

func (b BlogPost) validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("post title is required")
	}
	if strings.TrimSpace(b.Content) == "" {
		return fmt.Errorf("post content is required")
	}
	if b.PublishDate == "" {
		return fmt.Errorf("publish date is required")
	}
	if _, err := time.Parse("2006-01-02", b.PublishDate); err != nil {
		return fmt.Errorf("publish date must be an ISO date: %w", err)
	}
	if b.Status != statusDraft && b.Status != statusPublished {
		return fmt.Errorf("unknown post status %q", b.Status)
	}
	return nil
}

// readingTime estimates minutes to read at 200 words per minute,
// rounded up. An empty body yields 0, not 1.
func readingTime(content string) int {
	words := strings.Fields(content)
	if len(words) == 0 {
		return 0
	}
	return (len(words) + 199) / 200
}

// splitCommaList splits comma-separated admin input, trimming each
// segment. Empty segments are kept: "a,,b" yields ["a","","b"].
func splitCommaList(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
