// Package validation holds the request schemas of the task API.
//
// Each schema is a pure function from raw, untyped input to a typed payload.
// Expected failures are returned as *Error values carrying one Issue per
// offending field, in schema field order.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yukikurage/task-assignment-api/internal/models"
)

// Issue is a single violated rule.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error lists every issue found in one validation pass.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	messages := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		messages[i] = issue.Message
	}
	return strings.Join(messages, ", ")
}

// AsError reports whether err is a validation failure.
func AsError(err error) (*Error, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return models.TaskStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("task_priority", func(fl validator.FieldLevel) bool {
		return models.TaskPriority(fl.Field().String()).IsValid()
	})

	return v
}

// collector gathers issues for one schema run, keyed by field.
type collector struct {
	issues map[string]string
}

func newCollector() *collector {
	return &collector{issues: make(map[string]string)}
}

func (c *collector) add(field, message string) {
	if _, exists := c.issues[field]; !exists {
		c.issues[field] = message
	}
}

// str reads an optional string from a JSON object.
func (c *collector) str(raw map[string]any, key string) *string {
	value, ok := raw[key]
	if !ok {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		c.add(key, typeMessage("string", value))
		return nil
	}
	return &s
}

// queryStr reads an optional, single-valued query parameter.
func (c *collector) queryStr(values map[string][]string, key string) *string {
	list, ok := values[key]
	if !ok || len(list) == 0 {
		return nil
	}
	if len(list) > 1 {
		c.add(key, "Invalid input: expected string, received array")
		return nil
	}
	return &list[0]
}

// check runs the struct rules and records the failures.
func (c *collector) check(payload any, overrides map[string]string) {
	err := validate.Struct(payload)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		c.add("", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		c.add(fe.Field(), issueMessage(fe, overrides))
	}
}

func (c *collector) result(order []string) error {
	if len(c.issues) == 0 {
		return nil
	}
	issues := make([]Issue, 0, len(c.issues))
	for _, field := range order {
		if message, ok := c.issues[field]; ok {
			issues = append(issues, Issue{Field: field, Message: message})
			delete(c.issues, field)
		}
	}
	// Anything outside the schema order (struct level failures).
	for field, message := range c.issues {
		issues = append(issues, Issue{Field: field, Message: message})
	}
	return &Error{Issues: issues}
}

func issueMessage(fe validator.FieldError, overrides map[string]string) string {
	if message, ok := overrides[fe.Field()+"."+fe.Tag()]; ok {
		return message
	}
	switch fe.Tag() {
	case "required":
		return "Invalid input: expected string, received undefined"
	case "min":
		return fmt.Sprintf("Too small: expected string to have >=%s characters", fe.Param())
	case "task_status":
		return enumMessage(models.TaskStatuses)
	case "task_priority":
		return enumMessage(models.TaskPriorities)
	default:
		return fmt.Sprintf("Invalid value for %s", fe.Field())
	}
}

func enumMessage[T ~string](values []T) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", string(v))
	}
	return "Invalid option: expected one of " + strings.Join(quoted, "|")
}

func typeMessage(expected string, value any) string {
	return fmt.Sprintf("Invalid input: expected %s, received %s", expected, jsonType(value))
}

func jsonType(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, uint64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return reflect.TypeOf(value).Kind().String()
	}
}
