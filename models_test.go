package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t  ", 0},
		{"one word", "hello", 1},
		{"exactly 200 words", strings.Repeat("a ", 200), 1},
		{"201 words", strings.Repeat("a ", 201), 2},
		{"400 words", strings.Repeat("a ", 400), 2},
		{"401 words", strings.Repeat("a ", 401), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readingTime(tt.content); got != tt.want {
				t.Errorf("readingTime(%d words) = %d, want %d",
					len(strings.Fields(tt.content)), got, tt.want)
			}
		})
	}
}

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a, b ,c", []string{"a", "b", "c"}},
		{"a,,b", []string{"a", "", "b"}},
		{"single", []string{"single"}},
		{"  spaced  ", []string{"spaced"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := splitCommaList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCommaList(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestProjectValidate(t *testing.T) {
	valid := Project{Title: "App", Description: "A thing"}
	if err := valid.validate(); err != nil {
		t.Errorf("valid project rejected: %v", err)
	}
	if err := (Project{Description: "no title"}).validate(); err == nil {
		t.Error("project without title accepted")
	}
	if err := (Project{Title: "no description"}).validate(); err == nil {
		t.Error("project without description accepted")
	}
}

func TestProjectImageURL(t *testing.T) {
	p := Project{ImageID: "abc123"}
	want := "https://drive.google.com/uc?export=view&id=abc123"
	if got := p.ImageURL(); got != want {
		t.Errorf("ImageURL() = %q, want %q", got, want)
	}
	if got := (Project{}).ImageURL(); got != "" {
		t.Errorf("ImageURL() on empty imageId = %q, want empty", got)
	}
}

func TestSkillValidate(t *testing.T) {
	tests := []struct {
		name    string
		skill   Skill
		wantErr bool
	}{
		{"valid", Skill{Name: "Go", Category: "Backend", Level: 4}, false},
		{"missing name", Skill{Category: "Backend", Level: 3}, true},
		{"bad category", Skill{Name: "Go", Category: "Cooking", Level: 3}, true},
		{"level too low", Skill{Name: "Go", Category: "Backend", Level: 0}, true},
		{"level too high", Skill{Name: "Go", Category: "Backend", Level: 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.skill.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBlogPostValidate(t *testing.T) {
	valid := BlogPost{
		Title:       "Post",
		Content:     "Some words",
		PublishDate: "2026-08-30",
		Status:      statusDraft,
	}
	if err := valid.validate(); err != nil {
		t.Errorf("valid post rejected: %v", err)
	}

	bad := valid
	bad.PublishDate = "30/08/2026"
	if err := bad.validate(); err == nil {
		t.Error("post with non-ISO date accepted")
	}

	bad = valid
	bad.Status = "archived"
	if err := bad.validate(); err == nil {
		t.Error("post with unknown status accepted")
	}
}
