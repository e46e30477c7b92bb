package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"floormark/annotate"
	"floormark/models"
	"floormark/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// NoImageMessage Returned instead of image bytes before the first upload.
const NoImageMessage = "No image has been uploaded yet."

// GetAnnotatedImage Draw all marks on the stored floor plan and write it out as png.
// Nothing is cached, every request decodes the image and draws every box again.
func GetAnnotatedImage(state *models.State, style annotate.Style) gin.HandlerFunc {
	fn := func(c *gin.Context) {
		data, marks, err := state.Snapshot()
		if errors.Is(err, models.ErrNoImage) {
			c.String(http.StatusOK, NoImageMessage)
			return
		}
		if err != nil {
			log.Warn(fmt.Sprintf("Error reading stored image: %s", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		img, format, err := utils.DecodeImage(data)
		if err != nil {
			log.Warn(fmt.Sprintf("Error decoding stored image: %s", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		log.Debug(fmt.Sprintf("Decoded stored %s image", format))

		annotated, err := annotate.Annotate(img, marks, style)
		if err != nil {
			log.Warn(fmt.Sprintf("Error drawing marks: %s", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		buffer, err := utils.ImageToPngBuffer(annotated)
		if err != nil {
			log.Warn(fmt.Sprintf("Error writing annotated image to png buffer: %s", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "image/png", *buffer)
	}
	return fn
}
