package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"floormark/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// CreateMarkInput Body sent by the click handler of the upload page.
// Values may be JSON strings or numbers, both are stored as their text.
type CreateMarkInput struct {
	X        json.RawMessage `json:"x"`
	Y        json.RawMessage `json:"y"`
	TableNum json.RawMessage `json:"tableNum"`
}

// rawText Literal text of a JSON value. Strings are unquoted, null and missing values are empty.
func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// SaveCoordinate Record a mark. Form posts get an HTML fragment back, JSON posts get the mark.
func SaveCoordinate(state *models.State) gin.HandlerFunc {
	fn := func(c *gin.Context) {
		if c.ContentType() == gin.MIMEJSON {
			createMark(c, state)
			return
		}

		mark, err := state.AddMark(c.PostForm("x"), c.PostForm("y"), c.PostForm("tableNum"))
		if err != nil {
			log.Warn(fmt.Sprintf("Error saving mark: %s", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		log.Info(fmt.Sprintf("Saved table %q at (%s, %s)", mark.Label, mark.X, mark.Y))
		c.HTML(http.StatusOK, "saved.tmpl", gin.H{"mark": mark})
	}
	return fn
}

// CreateMark Record a mark sent as JSON
func CreateMark(state *models.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		createMark(c, state)
	}
}

func createMark(c *gin.Context, state *models.State) {
	var input CreateMarkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mark, err := state.AddMark(rawText(input.X), rawText(input.Y), rawText(input.TableNum))
	if err != nil {
		log.Warn(fmt.Sprintf("Error saving mark: %s", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	log.Info(fmt.Sprintf("Saved table %q at (%s, %s)", mark.Label, mark.X, mark.Y))
	c.JSON(http.StatusOK, gin.H{"data": mark})
}

// FindMarks Find all marks
func FindMarks(state *models.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		marks, err := state.Marks()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": marks})
	}
}

// ViewTables Render the numbered listing of all marks.
func ViewTables(state *models.State) gin.HandlerFunc {
	fn := func(c *gin.Context) {
		marks, err := state.Marks()
		if err != nil {
			log.Warn(fmt.Sprintf("Error listing marks: %s", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.HTML(http.StatusOK, "tables.tmpl", gin.H{
			"title": "Registered tables",
			"marks": marks,
		})
	}
	return fn
}
