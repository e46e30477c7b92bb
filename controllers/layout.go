package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"floormark/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ImageField Name of the multipart field carrying the floor plan.
const ImageField = "image_file"

// Index Render the upload page. A POST carrying a non-empty image replaces the stored floor plan first.
func Index(state *models.State) gin.HandlerFunc {
	fn := func(c *gin.Context) {
		if c.Request.Method == http.MethodPost {
			if err := uploadImage(c, state); err != nil {
				log.Warn(fmt.Sprintf("Error storing uploaded image: %s", err.Error()))
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		_, present := state.Image()
		c.HTML(http.StatusOK, "index.tmpl", gin.H{
			"title":        "Floor plan",
			"imagePresent": present,
		})
	}
	return fn
}

// uploadImage Store the image field of the request, if there is one. Anything is accepted.
func uploadImage(c *gin.Context, state *models.State) error {
	header, err := c.FormFile(ImageField)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			log.Debug(fmt.Sprintf("No image in upload: %s", err.Error()))
		}
		return nil
	}
	if header.Size == 0 {
		log.Debug("Ignoring empty upload")
		return nil
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	stored, err := state.SaveImage(file)
	if err != nil {
		return err
	}
	log.Info(fmt.Sprintf("Stored %s (%d bytes) as %s", header.Filename, stored.Size, stored.Path))
	return nil
}
