package handlers

import (
	"strconv"

	"portfolio/internal/database"
	"portfolio/internal/models"

	"github.com/gin-gonic/gin"
)

// ResourceRoutes are the dashboard handlers for one collection type.
type ResourceRoutes struct {
	Kind   string
	Add    gin.HandlerFunc
	Edit   gin.HandlerFunc
	Delete gin.HandlerFunc
}

type resource[T any] struct {
	kind   string // path segment and audit entity
	tab    string
	label  string
	fields []field
	coll   func(ContentStore) database.Collection[T]
	fill   func(rec *T, v formValues) error
	id     func(rec *T) uint
	title  func(rec *T) string
}

// Resources returns add/edit/delete handlers for every collection type.
func (h *Handlers) Resources() []ResourceRoutes {
	return []ResourceRoutes{
		routesFor(h, skillResource),
		routesFor(h, educationResource),
		routesFor(h, experienceResource),
		routesFor(h, projectResource),
		routesFor(h, thesisResource),
	}
}

func routesFor[T any](h *Handlers, r resource[T]) ResourceRoutes {
	return ResourceRoutes{
		Kind:   r.kind,
		Add:    addRecord(h, r),
		Edit:   editRecord(h, r),
		Delete: deleteRecord(h, r),
	}
}

func addRecord[T any](h *Handlers, r resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		vals, err := readForm(c, r.fields)
		if err != nil {
			h.fail(c, err)
			return
		}

		var rec T
		if err := r.fill(&rec, vals); err != nil {
			h.fail(c, err)
			return
		}
		if err := r.coll(h.store).Create(c.Request.Context(), &rec); err != nil {
			h.fail(c, err)
			return
		}

		h.audit(c, r.kind, r.id(&rec), "create", r.title(&rec))
		h.flash(c, r.label+" added")
		redirectToTab(c, r.tab)
	}
}

func editRecord[T any](h *Handlers, r resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			h.fail(c, err)
			return
		}

		coll := r.coll(h.store)
		rec, err := coll.Get(c.Request.Context(), id)
		if err != nil {
			h.fail(c, err)
			return
		}

		vals, err := readForm(c, r.fields)
		if err != nil {
			h.fail(c, err)
			return
		}
		if err := r.fill(rec, vals); err != nil {
			h.fail(c, err)
			return
		}
		if err := coll.Update(c.Request.Context(), rec); err != nil {
			h.fail(c, err)
			return
		}

		h.audit(c, r.kind, id, "update", r.title(rec))
		h.flash(c, r.label+" updated")
		redirectToTab(c, r.tab)
	}
}

// deleteRecord succeeds whether or not the row exists.
func deleteRecord[T any](h *Handlers, r resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			h.fail(c, err)
			return
		}

		deleted, err := r.coll(h.store).Delete(c.Request.Context(), id)
		if err != nil {
			h.fail(c, err)
			return
		}

		if deleted {
			h.audit(c, r.kind, id, "delete", "")
			h.flash(c, r.label+" deleted")
		}
		redirectToTab(c, r.tab)
	}
}

var skillResource = resource[models.Skill]{
	kind:   "skill",
	tab:    "skills",
	label:  "Skill",
	fields: []field{required("name"), required("percentage")},
	coll:   func(s ContentStore) database.Collection[models.Skill] { return s.Skills() },
	fill: func(rec *models.Skill, v formValues) error {
		pct, err := v.int("percentage")
		if err != nil {
			return err
		}
		rec.Name = v["name"]
		rec.Percentage = pct
		return nil
	},
	id:    func(rec *models.Skill) uint { return rec.ID },
	title: func(rec *models.Skill) string { return rec.Name + " " + strconv.Itoa(rec.Percentage) + "%" },
}

var educationResource = resource[models.Education]{
	kind:   "education",
	tab:    "education",
	label:  "Education",
	fields: []field{required("degree"), required("institution"), required("year_range"), required("description")},
	coll:   func(s ContentStore) database.Collection[models.Education] { return s.Education() },
	fill: func(rec *models.Education, v formValues) error {
		rec.Degree = v["degree"]
		rec.Institution = v["institution"]
		rec.YearRange = v["year_range"]
		rec.Description = v["description"]
		return nil
	},
	id:    func(rec *models.Education) uint { return rec.ID },
	title: func(rec *models.Education) string { return rec.Degree + ", " + rec.Institution },
}

var experienceResource = resource[models.Experience]{
	kind:   "experience",
	tab:    "experience",
	label:  "Experience",
	fields: []field{required("role"), required("company"), required("year_range"), required("description")},
	coll:   func(s ContentStore) database.Collection[models.Experience] { return s.Experience() },
	fill: func(rec *models.Experience, v formValues) error {
		rec.Role = v["role"]
		rec.Company = v["company"]
		rec.YearRange = v["year_range"]
		rec.Description = v["description"]
		return nil
	},
	id:    func(rec *models.Experience) uint { return rec.ID },
	title: func(rec *models.Experience) string { return rec.Role + " at " + rec.Company },
}

var projectResource = resource[models.Project]{
	kind:   "project",
	tab:    "projects",
	label:  "Project",
	fields: []field{required("title"), required("category"), required("project_link"), optional("image_url")},
	coll:   func(s ContentStore) database.Collection[models.Project] { return s.Projects() },
	fill: func(rec *models.Project, v formValues) error {
		rec.Title = v["title"]
		rec.Category = v["category"]
		rec.ProjectLink = v["project_link"]
		rec.ImageURL = v["image_url"]
		return nil
	},
	id:    func(rec *models.Project) uint { return rec.ID },
	title: func(rec *models.Project) string { return rec.Title },
}

var thesisResource = resource[models.Thesis]{
	kind:   "thesis",
	tab:    "thesis",
	label:  "Thesis",
	fields: []field{required("title"), required("description"), required("publication_date"), optional("link")},
	coll:   func(s ContentStore) database.Collection[models.Thesis] { return s.Theses() },
	fill: func(rec *models.Thesis, v formValues) error {
		rec.Title = v["title"]
		rec.Description = v["description"]
		rec.PublicationDate = v["publication_date"]
		rec.Link = v["link"]
		return nil
	},
	id:    func(rec *models.Thesis) uint { return rec.ID },
	title: func(rec *models.Thesis) string { return rec.Title },
}

var aboutFields = []field{
	optional("name"), optional("birthday"), optional("website"), optional("phone"),
	optional("city"), optional("degree"), optional("email"), optional("freelance_status"),
	optional("short_bio"), optional("long_bio"), optional("profile_image"),
}

// UpdateAbout creates the profile on first save and overwrites it after.
func (h *Handlers) UpdateAbout(c *gin.Context) {
	vals, err := readForm(c, aboutFields)
	if err != nil {
		h.fail(c, err)
		return
	}

	about := models.About{
		Name:            vals["name"],
		Birthday:        vals["birthday"],
		Website:         vals["website"],
		Phone:           vals["phone"],
		City:            vals["city"],
		Degree:          vals["degree"],
		Email:           vals["email"],
		FreelanceStatus: vals["freelance_status"],
		ShortBio:        vals["short_bio"],
		LongBio:         vals["long_bio"],
		ProfileImage:    vals["profile_image"],
	}
	if err := h.store.SaveAbout(c.Request.Context(), &about); err != nil {
		h.fail(c, err)
		return
	}

	h.audit(c, "about", about.ID, "update", about.Name)
	h.flash(c, "Profile saved")
	redirectToTab(c, "about")
}
