package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// StringToID parses a numeric id path parameter.
func StringToID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// CollectIndexed gathers form values submitted as field[0], field[1],
// ... and falls back to repeated plain keys when no indexed values are
// present. Empty indexed values are skipped, not treated as the end of
// the list; the scan stops at the first missing index.
func CollectIndexed(c *gin.Context, field string) []string {
	var values []string
	for i := 0; ; i++ {
		value, ok := c.GetPostForm(fmt.Sprintf("%s[%d]", field, i))
		if !ok {
			break
		}
		if value == "" {
			continue
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		values = c.PostFormArray(field)
	}
	return values
}

// ParseCheckbox interprets the values browsers and form libraries send
// for a checked box. Anything else, including absence, is false.
func ParseCheckbox(s string) bool {
	switch strings.ToLower(s) {
	case "y", "on", "true", "1":
		return true
	}
	return false
}

func ParseStartTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
