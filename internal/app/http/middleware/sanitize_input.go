package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeAndCleanInputMiddleware strips markup from every top-level
// string field of a JSON body before it reaches a handler. Donor-supplied
// text (names, tier labels) ends up verbatim in rendered emails, so it is
// scrubbed at the door.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}

		var body map[string]interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		for k, v := range body {
			if str, ok := v.(string); ok {
				body[k] = sanitizePolicy.Sanitize(str)
			}
		}

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}
