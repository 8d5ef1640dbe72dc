package models

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func taskValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateStruct runs the struct tags and appends translated messages to verr.
func validateStruct(task *Task, verr *ValidationError) {
	err := taskValidator().Struct(task)
	if err == nil {
		return
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		verr.Add("task", err.Error())
		return
	}
	for _, fe := range fieldErrors {
		if hasField(verr, fe.Field()) {
			continue
		}
		verr.Add(fe.Field(), fieldMessage(fe))
	}
}

func hasField(verr *ValidationError, field string) bool {
	for _, f := range verr.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() + "." + fe.Tag() {
	case "title.required":
		return "Task title is required"
	case "title.max":
		return "Task title cannot exceed 100 characters"
	case "description.max":
		return "Description cannot exceed 500 characters"
	case "dueDate.required":
		return "Due date is required"
	}
	if fe.Tag() == "oneof" {
		return fmt.Sprintf("`%v` is not a valid enum value for path `%s`.", fe.Value(), fe.Field())
	}
	return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
}
