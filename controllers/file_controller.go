package controllers

import (
	"fmt"
	"log"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/abraham-translation/abraham-translation-api/services"
	"github.com/abraham-translation/abraham-translation-api/utils"
)

// DownloadFile handles GET /api/files/download?path= - streams a stored
// order document back to the browser as an attachment
func DownloadFile(c *gin.Context) {
	filePath := c.Query("path")
	if filePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File path is required"})
		return
	}

	content, err := services.GetS3Service().DownloadDocument(filePath)
	if err != nil {
		log.Printf("Failed to download %s: %v", filePath, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	fileName := path.Base(filePath)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, utils.ContentTypeForFile(fileName), content)
}
