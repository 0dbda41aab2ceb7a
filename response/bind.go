package response

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var jsonNamesOnce sync.Once

// UseJSONFieldNames makes validation errors report fields by their json
// names, so messages match what the client sent.
func UseJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// BindError answers a failed ShouldBind* call with 400, naming each
// offending field, its value and, for enumerated fields, the allowed set.
func BindError(c *gin.Context, err error) {
	BadRequestError(c, describeBindError(err))
}

func describeBindError(err error) string {
	var se binding.SliceValidationError
	if errors.As(err, &se) {
		msgs := make([]string, 0, len(se))
		for _, e := range se {
			msgs = append(msgs, describeBindError(e))
		}
		return strings.Join(msgs, "; ")
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, describeField(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	name := fe.Field()
	// drop the root struct name from Type.a[0].b
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		name = rest
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "oneof":
		allowed := strings.Fields(fe.Param())
		return fmt.Sprintf("%s must be one of %v, got '%v'", name, allowed, fe.Value())
	default:
		return fmt.Sprintf("%s failed on '%s' (value '%v')", name, fe.Tag(), fe.Value())
	}
}
