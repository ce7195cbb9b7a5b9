package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Items renders the listing envelope {"items": [...]}. A nil slice becomes an
// empty JSON array, never null.
func Items(c *gin.Context, items []map[string]interface{}) {
	if items == nil {
		items = []map[string]interface{}{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ItemsWithNote renders the degraded listing envelope: still HTTP 200, empty
// or partial items plus a diagnostic note. Read endpoints never hard-fail.
func ItemsWithNote(c *gin.Context, items []map[string]interface{}, note string) {
	if items == nil {
		items = []map[string]interface{}{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "note": note})
}

// Detail renders the error envelope {"detail": "..."} used by write endpoints.
func Detail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"detail": message})
}
