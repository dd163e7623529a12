package handlers

import (
	"strconv"
	"strings"

	"portfolio/internal/database"

	"github.com/gin-gonic/gin"
)

type field struct {
	name     string
	required bool
}

func required(name string) field { return field{name: name, required: true} }
func optional(name string) field { return field{name: name} }

type formValues map[string]string

// readForm collects the posted fields. A required field must be present
// in the form; an empty value still counts as present. Absent optional
// fields read as "".
func readForm(c *gin.Context, fields []field) (formValues, error) {
	vals := make(formValues, len(fields))
	for _, f := range fields {
		v, ok := c.GetPostForm(f.name)
		if !ok && f.required {
			return nil, &MissingFieldError{Field: f.name}
		}
		vals[f.name] = v
	}
	return vals, nil
}

func (v formValues) int(name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v[name]))
	if err != nil {
		return 0, &InvalidFieldError{Field: name, Reason: "must be an integer"}
	}
	return n, nil
}

// parseID reads the :id path segment. Anything that is not a positive
// integer cannot name a record.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, database.ErrNotFound
	}
	return uint(id), nil
}
