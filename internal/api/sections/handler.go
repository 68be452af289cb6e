package sectionsapi

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumiere-backend/internal/editor"
	"lumiere-backend/internal/sections"
)

// The section editor endpoints back the admin UI: they expose the registry's
// type catalog, build type-specific forms, and apply structural edits to a
// section's content object server-side.

type TypeDTO struct {
	Kind   string     `json:"kind"`
	Label  string     `json:"label"`
	Groups []GroupDTO `json:"groups,omitempty"`
}

type GroupDTO struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

type FormRequest struct {
	Type    string          `json:"type" binding:"required"`
	Content json.RawMessage `json:"content"`
}

type EditRequest struct {
	Type    string          `json:"type" binding:"required"`
	Content json.RawMessage `json:"content"`
	Op      string          `json:"op" binding:"required,oneof=set add-item remove-item raw"`
	Path    string          `json:"path"`
	Value   any             `json:"value"`
	Index   int             `json:"index"`
	Raw     string          `json:"raw"`
}

type Handler struct {
	editor *editor.Editor
	log    zerolog.Logger
}

func NewHandler(ed *editor.Editor, log zerolog.Logger) *Handler {
	return &Handler{editor: ed, log: log}
}

// GET /admin/sections/types
func (h *Handler) ListTypes(c *gin.Context) {
	defs := sections.Kinds()
	out := make([]TypeDTO, 0, len(defs))
	for _, def := range defs {
		dto := TypeDTO{Kind: string(def.Kind), Label: def.Label}
		for _, g := range def.Groups {
			dto.Groups = append(dto.Groups, GroupDTO{Path: g.Path, Label: g.Label})
		}
		out = append(out, dto)
	}
	c.JSON(http.StatusOK, gin.H{"types": out})
}

// GET /admin/sections/new?type=hero returns default content for a fresh section.
func (h *Handler) NewContent(c *gin.Context) {
	typ := c.Query("type")
	def, ok := sections.Lookup(sections.Kind(typ))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown section type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": typ, "content": def.New()})
}

// POST /admin/sections/form
func (h *Handler) BuildForm(c *gin.Context) {
	var req FormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.editor.BuildForm(req.Type, req.Content))
}

// POST /admin/sections/edit applies one structural edit and returns the new
// content object together with the rebuilt form.
func (h *Handler) Edit(c *gin.Context) {
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		next json.RawMessage
		err  error
	)
	switch req.Op {
	case "set":
		next, err = editor.ApplyEdit(req.Content, req.Path, req.Value)
	case "add-item":
		next, err = editor.AddItem(req.Type, req.Content, req.Path)
	case "remove-item":
		next, err = editor.RemoveItem(req.Content, req.Path, req.Index)
	case "raw":
		next = h.editor.ApplyRaw(req.Content, req.Raw)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": next,
		"form":    h.editor.BuildForm(req.Type, next),
	})
}
