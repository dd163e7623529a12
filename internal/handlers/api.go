package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"portfolio/internal/database"
	"portfolio/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// GetAbout answers the profile, or {} before one has been saved.
func (h *Handlers) GetAbout(c *gin.Context) {
	about, err := h.store.About(c.Request.Context())
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, about)
}

func (h *Handlers) GetSkills(c *gin.Context)     { listJSON(h, c, h.store.Skills()) }
func (h *Handlers) GetEducation(c *gin.Context)  { listJSON(h, c, h.store.Education()) }
func (h *Handlers) GetExperience(c *gin.Context) { listJSON(h, c, h.store.Experience()) }
func (h *Handlers) GetProjects(c *gin.Context)   { listJSON(h, c, h.store.Projects()) }
func (h *Handlers) GetThesis(c *gin.Context)     { listJSON(h, c, h.store.Theses()) }

func listJSON[T any](h *Handlers, c *gin.Context, coll database.Collection[T]) {
	items, err := coll.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// SubmitContact stores a message from the public contact form. Both JSON
// and form bodies are accepted; field values are not validated.
func (h *Handlers) SubmitContact(c *gin.Context) {
	vals, err := contactValues(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	msg := models.ContactMessage{
		Name:    vals["name"],
		Email:   vals["email"],
		Subject: vals["subject"],
		Message: vals["message"],
	}
	if err := h.store.CreateMessage(c.Request.Context(), &msg); err != nil {
		h.fail(c, err)
		return
	}

	h.log.Info().Uint("message_id", msg.ID).Msg("contact message received")
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully!",
		"id":      msg.ID,
	})
}

var contactFields = []string{"name", "email", "subject", "message"}

func contactValues(c *gin.Context) (map[string]string, error) {
	vals := make(map[string]string, len(contactFields))

	if c.ContentType() == binding.MIMEJSON {
		var body map[string]any
		if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoData
			}
			return nil, ErrMalformedBody
		}
		if len(body) == 0 {
			return nil, ErrNoData
		}
		for _, k := range contactFields {
			switch v := body[k].(type) {
			case nil:
				vals[k] = ""
			case string:
				vals[k] = v
			default:
				vals[k] = fmt.Sprint(v)
			}
		}
		return vals, nil
	}

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, ErrMalformedBody
	}
	if len(c.Request.PostForm) == 0 {
		return nil, ErrNoData
	}
	for _, k := range contactFields {
		vals[k] = c.Request.PostForm.Get(k)
	}
	return vals, nil
}

// MarkMessageRead flips a message to read and returns the unread total.
func (h *Handlers) MarkMessageRead(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	unread, err := h.store.MarkMessageRead(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"unread_count": unread,
	})
}
