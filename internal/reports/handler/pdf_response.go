package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const contentTypePDF = "application/pdf"

func servePDFAttachment(c *gin.Context, fileName string, pdfBytes []byte) {
	setPDFHeaders(c, "attachment", fileName)
	c.Data(http.StatusOK, contentTypePDF, pdfBytes)
}

func servePDFInline(c *gin.Context, fileName string, pdfBytes []byte) {
	setPDFHeaders(c, "inline", fileName)
	c.Data(http.StatusOK, contentTypePDF, pdfBytes)
}

func setPDFHeaders(c *gin.Context, disposition, fileName string) {
	c.Header("Content-Type", contentTypePDF)
	c.Header("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposition, fileName))
}
