// auth.go - admin sign-in and the access gate for /admin routes
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "admin_token"

// sessionKey is the gin context key holding the resolved adminSession.
const sessionKey = "adminSession"

// adminSession is resolved once per request at the access gate and
// threaded to handlers through the request context. Handlers never
// consult globals for the current identity.
type adminSession struct {
	Username string
}

// Auth owns the session token for the single admin identity. A fresh
// token is minted at startup, so restarting the server signs the
// admin out.
type Auth struct {
	username string
	password string
	token    string
	salt     string
}

func NewAuth(cfg Config) *Auth {
	a := &Auth{
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		token:    randomToken(),
		salt:     randomToken(),
	}
	if a.password == "" {
		a.password = "admin123"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}
	return a
}

func randomToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

// hashIP hashes a client IP for privacy before it hits the logs or the
// visitors table.
func (a *Auth) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// validSession reports whether the request carries the current session
// cookie.
func (a *Auth) validSession(c *gin.Context) bool {
	token, err := c.Cookie(sessionCookie)
	return err == nil && subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) == 1
}

// RequireAdmin gates every /admin route. Unauthenticated visitors are
// sent back to the public root; authenticated ones get an adminSession
// in the context.
func (a *Auth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.validSession(c) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Set(sessionKey, adminSession{Username: a.username})
		c.Next()
	}
}

// currentSession returns the session the access gate resolved for this
// request.
func currentSession(c *gin.Context) adminSession {
	v, _ := c.Get(sessionKey)
	session, _ := v.(adminSession)
	return session
}

// RegisterLoginRoutes wires /login and /logout.
func (a *Auth) RegisterLoginRoutes(r *gin.Engine) {
	r.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
		if userOK && passOK {
			c.SetCookie(sessionCookie, a.token, 3600*24, "/", "", false, true)
			log.Printf("Admin login successful from %s", a.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin")
			return
		}

		// Failed sign-in is logged and re-rendered, never retried.
		log.Printf("Failed admin login attempt from %s", a.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	r.GET("/logout", func(c *gin.Context) {
		c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
		log.Printf("Admin logout from %s", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/")
	})
}
