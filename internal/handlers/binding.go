package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindStrictJSON decodes the request body with unknown fields rejected, then
// runs the binding validator over the result. Validation never leaks past
// this boundary: handlers work with already-validated values.
func bindStrictJSON(c *gin.Context, obj interface{}) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(obj); err != nil {
		// An empty body binds as an empty object, which field-level
		// validation then judges on its own.
		if !errors.Is(err, io.EOF) {
			return err
		}
	}

	return binding.Validator.ValidateStruct(obj)
}

var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDueDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
