// admin.go - admin console: dashboard plus one editor per collection
package main

import (
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardStats summarizes the content collections and recent traffic
// for the admin dashboard.
type DashboardStats struct {
	Projects       int            `json:"projects"`
	Skills         int            `json:"skills"`
	BlogPosts      int            `json:"blog_posts"`
	Published      int            `json:"published_posts"`
	VisitorsToday  int64          `json:"visitors_today"`
	RecentVisitors []VisitorEntry `json:"recent_visitors"`
}

type projectForm struct {
	Title        string `form:"title" binding:"required"`
	Description  string `form:"description" binding:"required"`
	Technologies string `form:"technologies"`
	ImageID      string `form:"imageId"`
	GithubURL    string `form:"githubUrl"`
	DemoURL      string `form:"demoUrl"`
}

type skillForm struct {
	Name     string `form:"name" binding:"required"`
	Category string `form:"category" binding:"required"`
	Level    int    `form:"level" binding:"required,min=1,max=5"`
	Icon     string `form:"icon"`
}

type blogPostForm struct {
	Title       string `form:"title" binding:"required"`
	Content     string `form:"content" binding:"required"`
	Categories  string `form:"categories"`
	Tags        string `form:"tags"`
	PublishDate string `form:"publishDate" binding:"required"`
}

// setupAdminRoutes wires the /admin group behind the access gate.
//
// Every editor follows the same contract: GET fetches the whole
// collection and renders it, POST mutates and redirects back to the
// GET (which re-fetches), and a mutation failure re-renders the editor
// with an error message. One policy for every editor.
func setupAdminRoutes(r *gin.Engine, auth *Auth, content *Content, binary *BinaryStore, tracker *Tracker) {
	admin := r.Group("/admin")
	admin.Use(auth.RequireAdmin())

	admin.GET("", func(c *gin.Context) {
		stats, err := dashboardStats(c, content, tracker)
		if err != nil {
			log.Printf("Error loading dashboard stats: %v", err)
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"username": currentSession(c).Username,
			"stats":    stats,
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := dashboardStats(c, content, tracker)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Projects: add only. No edit or delete affordance exists.
	renderProjects := func(c *gin.Context, status int, errMsg string) {
		projects, err := content.Projects(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching projects: %v", err)
		}
		c.HTML(status, "admin-projects.html", gin.H{
			"projects": projects,
			"error":    errMsg,
		})
	}

	admin.GET("/projects", func(c *gin.Context) {
		renderProjects(c, http.StatusOK, "")
	})

	admin.POST("/projects", func(c *gin.Context) {
		var form projectForm
		if err := c.ShouldBind(&form); err != nil {
			renderProjects(c, http.StatusBadRequest, "Title and description are required")
			return
		}
		project := Project{
			Title:        form.Title,
			Description:  form.Description,
			Technologies: splitCommaList(form.Technologies),
			ImageID:      form.ImageID,
			GithubURL:    form.GithubURL,
			DemoURL:      form.DemoURL,
		}
		if _, err := content.AddProject(c.Request.Context(), project); err != nil {
			log.Printf("Error adding project: %v", err)
			renderProjects(c, http.StatusInternalServerError, "Failed to add project")
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/projects")
	})

	// Skills: add, level update, delete.
	renderSkills := func(c *gin.Context, status int, errMsg string) {
		skills, err := content.Skills(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching skills: %v", err)
		}
		c.HTML(status, "admin-skills.html", gin.H{
			"skills":     skills,
			"categories": skillCategories,
			"error":      errMsg,
		})
	}

	admin.GET("/skills", func(c *gin.Context) {
		renderSkills(c, http.StatusOK, "")
	})

	admin.POST("/skills", func(c *gin.Context) {
		var form skillForm
		if err := c.ShouldBind(&form); err != nil {
			renderSkills(c, http.StatusBadRequest, "Name, category and a level from 1 to 5 are required")
			return
		}
		skill := Skill{
			Name:     form.Name,
			Category: form.Category,
			Level:    form.Level,
			Icon:     form.Icon,
		}
		if _, err := content.AddSkill(c.Request.Context(), skill); err != nil {
			log.Printf("Error adding skill: %v", err)
			renderSkills(c, http.StatusInternalServerError, "Failed to add skill")
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/skills")
	})

	admin.POST("/skills/:id/level", func(c *gin.Context) {
		var form struct {
			Level int `form:"level" binding:"required,min=1,max=5"`
		}
		if err := c.ShouldBind(&form); err != nil {
			renderSkills(c, http.StatusBadRequest, "Level must be between 1 and 5")
			return
		}
		if err := content.SetSkillLevel(c.Request.Context(), c.Param("id"), form.Level); err != nil {
			log.Printf("Error updating skill level: %v", err)
			renderSkills(c, http.StatusInternalServerError, "Failed to update skill level")
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/skills")
	})

	admin.POST("/skills/:id/delete", func(c *gin.Context) {
		if err := content.DeleteSkill(c.Request.Context(), c.Param("id")); err != nil {
			log.Printf("Error deleting skill: %v", err)
			renderSkills(c, http.StatusInternalServerError, "Failed to delete skill")
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/skills")
	})

	// Blog: add, status toggle, delete.
	renderBlog := func(c *gin.Context, status int, errMsg string) {
		posts, err := content.BlogPosts(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching blog posts: %v", err)
		}
		c.HTML(status, "admin-blog.html", gin.H{
			"posts": posts,
			"error": errMsg,
		})
	}

	admin.GET("/blog", func(c *gin.Context) {
		renderBlog(c, http.StatusOK, "")
	})

	admin.POST("/blog", func(c *gin.Context) {
		var form blogPostForm
		if err := c.ShouldBind(&form); err != nil {
			renderBlog(c, http.StatusBadRequest, "Title, content and publish date are required")
			return
		}
		post := BlogPost{
			Title:       form.Title,
			Content:     form.Content,
			Categories:  splitCommaList(form.Categories),
			Tags:        splitCommaList(form.Tags),
			PublishDate: form.PublishDate,
			Status:      statusDraft,
		}
		if _, err := content.AddBlogPost(c.Request.Context(), post); err != nil {
			log.Printf("Error adding blog post: %v", err)
			renderBlog(c, http.StatusInternalServerError, "Failed to save post")
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/blog")
	})

	admin.POST("/blog/:id/status", func(c *gin.Context) {
		status := c.PostForm("status")
		if err := content.SetBlogStatus(c.Request.Context(), c.Param("id"), status); err != nil {
			log.Printf("Error updating post status: %v", err)
			renderBlog(c, http.StatusInternalServerError, "Failed to update post status")
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/blog")
	})

	admin.POST("/blog/:id/delete", func(c *gin.Context) {
		if err := content.DeleteBlogPost(c.Request.Context(), c.Param("id")); err != nil {
			log.Printf("Error deleting blog post: %v", err)
			renderBlog(c, http.StatusInternalServerError, "Failed to delete post")
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/blog")
	})

	// About: single record, full-replacement writes, optional file
	// uploads for the profile image and resume.
	renderAbout := func(c *gin.Context, status int, errMsg, okMsg string) {
		about, err := content.About(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching about record: %v", err)
		}
		c.HTML(status, "admin-about.html", gin.H{
			"about":   about,
			"error":   errMsg,
			"success": okMsg,
		})
	}

	admin.GET("/about", func(c *gin.Context) {
		renderAbout(c, http.StatusOK, "", "")
	})

	admin.POST("/about", func(c *gin.Context) {
		var about About
		if err := c.ShouldBind(&about); err != nil {
			renderAbout(c, http.StatusBadRequest, "Bio is required", "")
			return
		}

		// Image upload, then resume upload, then the document write.
		// Each step gates the next; a failure mid-sequence surfaces the
		// editor error and leaves any already-uploaded file orphaned.
		if file, err := c.FormFile("profileImageFile"); err == nil {
			url, err := uploadFormFile(c, binary, file, "about", "profile")
			if err != nil {
				log.Printf("Error uploading profile image: %v", err)
				renderAbout(c, http.StatusInternalServerError, "Failed to upload profile image", "")
				return
			}
			about.ProfileImage = url
		}
		if file, err := c.FormFile("resumeFile"); err == nil {
			url, err := uploadFormFile(c, binary, file, "about", "resume")
			if err != nil {
				log.Printf("Error uploading resume: %v", err)
				renderAbout(c, http.StatusInternalServerError, "Failed to upload resume", "")
				return
			}
			about.ResumeURL = url
		}

		if err := content.SaveAbout(c.Request.Context(), about); err != nil {
			log.Printf("Error saving about record: %v", err)
			renderAbout(c, http.StatusInternalServerError, "Failed to update about section", "")
			return
		}
		renderAbout(c, http.StatusOK, "", "About section updated successfully")
	})
}

func dashboardStats(c *gin.Context, content *Content, tracker *Tracker) (DashboardStats, error) {
	ctx := c.Request.Context()
	var stats DashboardStats
	var err error

	if stats.Projects, err = content.store.Count(ctx, collectionProjects); err != nil {
		return stats, err
	}
	if stats.Skills, err = content.store.Count(ctx, collectionSkills); err != nil {
		return stats, err
	}
	if stats.BlogPosts, err = content.store.Count(ctx, collectionBlog); err != nil {
		return stats, err
	}
	posts, err := content.PublishedPosts(ctx)
	if err != nil {
		return stats, err
	}
	stats.Published = len(posts)

	if tracker != nil {
		if stats.VisitorsToday, err = tracker.VisitorsToday(ctx); err != nil {
			return stats, err
		}
		if stats.RecentVisitors, err = tracker.RecentVisitors(ctx, 20); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// uploadFormFile streams a multipart file to the binary store under a
// timestamped path.
func uploadFormFile(c *gin.Context, binary *BinaryStore, file *multipart.FileHeader, category, kind string) (string, error) {
	if binary == nil {
		return "", errUploadsDisabled
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return binary.Upload(c.Request.Context(), uploadPath(category, kind), file.Header.Get("Content-Type"), src)
}
