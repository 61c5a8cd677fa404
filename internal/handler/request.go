package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindStrict decodes a JSON object body into v, a pointer to a model struct.
// Every json field of the struct must be present and non-null, then the
// values must have the right types, then binding tags are checked.
func bindStrict(c *gin.Context, v any) []validationError {
	raw, err := c.GetRawData()
	if err != nil {
		return []validationError{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return bindingErrors(err)
		}
		return []validationError{{Loc: []string{"body"}, Msg: "value is not a valid dict", Type: "type_error.dict"}}
	}

	var missing []validationError
	for _, name := range jsonFields(reflect.TypeOf(v).Elem()) {
		value, ok := fields[name]
		switch {
		case !ok:
			missing = append(missing, validationError{Loc: bodyLoc(name), Msg: "field required", Type: "value_error.missing"})
		case bytes.Equal(bytes.TrimSpace(value), []byte("null")):
			missing = append(missing, validationError{Loc: bodyLoc(name), Msg: "none is not an allowed value", Type: "type_error.none.not_allowed"})
		}
	}
	if len(missing) > 0 {
		return missing
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return bindingErrors(err)
	}
	if err := binding.Validator.ValidateStruct(v); err != nil {
		return bindingErrors(err)
	}
	return nil
}

// jsonFields lists the json names of a struct's exported fields in declaration order
func jsonFields(t reflect.Type) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}
