package schedule

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ratiba/core"
)

var (
	eventTypeTag  = "eventtype"
	eventTypeText = "invalid event type"

	eventStatusTag  = "eventstatus"
	eventStatusText = "invalid event status"

	localTimeTag  = "localtime"
	localTimeText = "must be a valid date and time"

	endAfterStartTag  = "endafterstart"
	endAfterStartText = "end time must be after start time"

	blankTitleText = "this field cannot be blank"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(eventTypeTag, eventTypeValidation)
	core.RegisterCustomTranslation(eventTypeTag, eventTypeText)

	_ = core.Validate.RegisterValidation(eventStatusTag, eventStatusValidation)
	core.RegisterCustomTranslation(eventStatusTag, eventStatusText)

	_ = core.Validate.RegisterValidation(localTimeTag, localTimeValidation)
	core.RegisterCustomTranslation(localTimeTag, localTimeText)

	core.Validate.RegisterStructValidation(eventStructValidation, NewEvent{})
	core.Validate.RegisterStructValidation(eventStructValidation, UpdateEvent{})
	core.RegisterCustomTranslation(endAfterStartTag, endAfterStartText)
}

// Custom Validators

// inSet does a linear scan; the sets are tiny and must keep their declared order.
func inSet(val string, set []string) bool {
	for _, s := range set {
		if s == val {
			return true
		}
	}
	return false
}

// eventTypeValidation checks that the provided event type is in AllTypes.
func eventTypeValidation(fl validator.FieldLevel) bool {
	if typ, ok := fl.Field().Interface().(string); ok {
		return inSet(typ, AllTypes)
	}
	return false
}

// eventStatusValidation checks that the provided event status is in AllStatuses.
func eventStatusValidation(fl validator.FieldLevel) bool {
	if status, ok := fl.Field().Interface().(string); ok {
		return inSet(status, AllStatuses)
	}
	return false
}

// localTimeValidation checks that the provided wall-clock input parses to an instant.
// A malformed date is a field error here, never a fault downstream.
func localTimeValidation(fl validator.FieldLevel) bool {
	if val, ok := fl.Field().Interface().(string); ok {
		_, err := ParseLocal(val)
		return err == nil
	}
	return false
}

// eventStructValidation does struct level validation on NewEvent and UpdateEvent:
// End must be strictly after Start. It only fires once both fields parse, so a
// malformed date reports on its own field and nothing else.
func eventStructValidation(sl validator.StructLevel) {
	var startVal, endVal string
	switch evt := sl.Current().Interface().(type) {
	case NewEvent:
		startVal, endVal = evt.Start, evt.End
	case UpdateEvent:
		startVal, endVal = evt.Start, evt.End
	}

	start, err := ParseLocal(startVal)
	if err != nil {
		return
	}
	end, err := ParseLocal(endVal)
	if err != nil {
		return
	}
	if !end.After(start) {
		sl.ReportError(endVal, "end", "End", endAfterStartTag, "")
	}
}
