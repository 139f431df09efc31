// content.go - typed collection clients over the document store
//
// Each client validates records before persisting them, so malformed
// content is rejected at the store boundary no matter which editor
// produced it. Derived fields (project order, blog reading time) are
// computed here, never trusted from form input.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Content groups the per-collection clients around one store handle.
type Content struct {
	store *ContentStore
}

func NewContent(store *ContentStore) *Content {
	return &Content{store: store}
}

// About returns the singleton about record. A missing record yields a
// zero About so the editor can render an empty form.
func (c *Content) About(ctx context.Context) (About, error) {
	doc, err := c.store.Get(ctx, collectionAbout, aboutKey)
	if errors.Is(err, errNotFound) {
		return About{}, nil
	}
	if err != nil {
		return About{}, err
	}
	var about About
	if err := json.Unmarshal(doc.Data, &about); err != nil {
		return About{}, fmt.Errorf("decode about record: %w", err)
	}
	return about, nil
}

// SaveAbout replaces the about record wholesale. Last write wins.
func (c *Content) SaveAbout(ctx context.Context, about About) error {
	return c.store.Set(ctx, collectionAbout, aboutKey, about)
}

// Projects returns every project in store order. The order field is
// populated on each record but deliberately not used to sort here.
func (c *Content) Projects(ctx context.Context) ([]Project, error) {
	docs, err := c.store.List(ctx, collectionProjects)
	if err != nil {
		return nil, err
	}
	projects := make([]Project, 0, len(docs))
	for _, doc := range docs {
		var p Project
		if err := json.Unmarshal(doc.Data, &p); err != nil {
			return nil, fmt.Errorf("decode project %s: %w", doc.Key, err)
		}
		p.ID = doc.Key
		projects = append(projects, p)
	}
	return projects, nil
}

// AddProject validates and stores a new project. Order is assigned as
// the current project count plus one; deleting projects elsewhere never
// renumbers, so gaps are expected.
func (c *Content) AddProject(ctx context.Context, p Project) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}
	count, err := c.store.Count(ctx, collectionProjects)
	if err != nil {
		return "", err
	}
	p.Order = count + 1
	return c.store.Add(ctx, collectionProjects, p)
}

// Skills returns every skill in store order.
func (c *Content) Skills(ctx context.Context) ([]Skill, error) {
	docs, err := c.store.List(ctx, collectionSkills)
	if err != nil {
		return nil, err
	}
	skills := make([]Skill, 0, len(docs))
	for _, doc := range docs {
		var s Skill
		if err := json.Unmarshal(doc.Data, &s); err != nil {
			return nil, fmt.Errorf("decode skill %s: %w", doc.Key, err)
		}
		s.ID = doc.Key
		skills = append(skills, s)
	}
	return skills, nil
}

func (c *Content) AddSkill(ctx context.Context, s Skill) (string, error) {
	if err := s.validate(); err != nil {
		return "", err
	}
	return c.store.Add(ctx, collectionSkills, s)
}

// SetSkillLevel updates only the level field of one skill.
func (c *Content) SetSkillLevel(ctx context.Context, key string, level int) error {
	if err := validateSkillLevel(level); err != nil {
		return err
	}
	return c.store.Merge(ctx, collectionSkills, key, map[string]any{"level": level})
}

func (c *Content) DeleteSkill(ctx context.Context, key string) error {
	return c.store.Delete(ctx, collectionSkills, key)
}

// BlogPosts returns every post, draft and published alike.
func (c *Content) BlogPosts(ctx context.Context) ([]BlogPost, error) {
	docs, err := c.store.List(ctx, collectionBlog)
	if err != nil {
		return nil, err
	}
	posts := make([]BlogPost, 0, len(docs))
	for _, doc := range docs {
		var p BlogPost
		if err := json.Unmarshal(doc.Data, &p); err != nil {
			return nil, fmt.Errorf("decode blog post %s: %w", doc.Key, err)
		}
		p.ID = doc.Key
		posts = append(posts, p)
	}
	return posts, nil
}

// PublishedPosts filters the collection down to published posts.
func (c *Content) PublishedPosts(ctx context.Context) ([]BlogPost, error) {
	posts, err := c.BlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	published := posts[:0]
	for _, p := range posts {
		if p.Status == statusPublished {
			published = append(published, p)
		}
	}
	return published, nil
}

// AddBlogPost validates and stores a new post. Reading time is derived
// from the content; a missing status defaults to draft.
func (c *Content) AddBlogPost(ctx context.Context, p BlogPost) (string, error) {
	if p.Status == "" {
		p.Status = statusDraft
	}
	p.ReadingTime = readingTime(p.Content)
	if err := p.validate(); err != nil {
		return "", err
	}
	return c.store.Add(ctx, collectionBlog, p)
}

// SetBlogStatus updates only the status field of one post.
func (c *Content) SetBlogStatus(ctx context.Context, key, status string) error {
	if status != statusDraft && status != statusPublished {
		return fmt.Errorf("unknown post status %q", status)
	}
	return c.store.Merge(ctx, collectionBlog, key, map[string]any{"status": status})
}

func (c *Content) DeleteBlogPost(ctx context.Context, key string) error {
	return c.store.Delete(ctx, collectionBlog, key)
}
