package main

import (
	"errors"
	"net/http"
	"strings"

	"docvault/models"
	"docvault/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "user"

// maxJSONBody caps JSON request bodies on the auth endpoints.
const maxJSONBody = 1 << 20

func (a *app) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(securityHeaders())
	r.Use(a.rateLimit(a.generalLimit))

	auth := r.Group("/auth")
	auth.Use(a.rateLimit(a.authLimit), jsonBodyLimit(maxJSONBody))
	auth.POST("/register", a.registerHandler)
	auth.POST("/login", a.loginHandler)
	auth.GET("/verify", a.authRequired(), a.verifyHandler)

	docs := r.Group("/documents")
	docs.Use(a.authRequired())
	docs.GET("", a.listDocumentsHandler)
	docs.POST("/upload", a.rateLimit(a.uploadLimit), a.uploadDocumentHandler)
	docs.DELETE("", a.deleteDocumentHandler)

	return r
}

// Every response uses the same envelope so clients handle one shape.
func respondOK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

func jsonBodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost &&
			strings.Contains(c.ContentType(), "application/json") &&
			c.Request.ContentLength > limit {
			respondError(c, http.StatusRequestEntityTooLarge, "Request too large")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *app) rateLimit(l *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(ratelimit.ClientIdentifier(c.Request)) {
			respondError(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *app) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.guard.Authenticate(c.Request)
		if err != nil {
			respondError(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}
		c.Set(ctxUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	v, _ := c.Get(ctxUserKey)
	u, _ := v.(*models.User)
	return u
}

func (a *app) registerHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		FullName string `json:"fullName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed")
		return
	}
	user, tok, err := a.registerUser(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			respondError(c, http.StatusBadRequest, ve.Msg)
		case errors.Is(err, ErrEmailExists):
			respondError(c, http.StatusConflict, ErrEmailExists.Error())
		default:
			a.logger.Error("registration failed", "err", err)
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	respondOK(c, http.StatusCreated, gin.H{
		"user":    user,
		"token":   tok,
		"message": "Account created successfully",
	})
}

func (a *app) loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrInvalidCredentials.Error())
		return
	}
	user, tok, err := a.loginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, ErrInvalidCredentials.Error())
			return
		}
		a.logger.Error("login failed", "err", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"user":    user,
		"token":   tok,
		"message": "Login successful",
	})
}

func (a *app) verifyHandler(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{
		"user":    currentUser(c),
		"message": "Token valid",
	})
}

func (a *app) listDocumentsHandler(c *gin.Context) {
	docs, err := a.listDocuments(c.Request.Context(), currentUser(c), c.Query("category"))
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			respondError(c, http.StatusBadRequest, ve.Msg)
			return
		}
		a.logger.Error("list documents failed", "err", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch documents")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"documents": docs})
}

func (a *app) uploadDocumentHandler(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file provided")
		return
	}
	category := models.Category(c.PostForm("category"))
	doc, err := a.uploadDocument(c.Request.Context(), currentUser(c), fh, category)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			respondError(c, http.StatusBadRequest, ve.Msg)
			return
		}
		a.logger.Error("upload failed", "err", err)
		respondError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{
		"document": doc,
		"message":  "File uploaded successfully",
	})
}

func (a *app) deleteDocumentHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "Document ID is required")
		return
	}
	if err := a.deleteDocument(c.Request.Context(), currentUser(c), id); err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Document not found")
			return
		}
		a.logger.Error("delete document failed", "err", err)
		respondError(c, http.StatusInternalServerError, "Failed to delete document")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
