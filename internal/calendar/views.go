package calendar

import (
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
)

// View is a renderer view identifier as understood by the calendar
// widget on the other side of the API.
type View string

const (
	ViewDayGridMonth View = "dayGridMonth"
	ViewTimeGridWeek View = "timeGridWeek"
	ViewTimeGridDay  View = "timeGridDay"
	// ViewListWeek is reachable only through SetView with the literal
	// view id; no named range maps onto it.
	ViewListWeek View = "listWeek"
)

var viewsByRange = map[string]View{
	"month": ViewDayGridMonth,
	"week":  ViewTimeGridWeek,
	"day":   ViewTimeGridDay,
}

// ViewForRange maps an external range name (month, week, day) onto the
// renderer view. Unknown names are a validation error.
func ViewForRange(name string) (View, error) {
	if view, ok := viewsByRange[name]; ok {
		return view, nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, "unknown calendar range '"+name+"'")
}

// IsValid reports whether the view is one the renderer understands.
func (v View) IsValid() bool {
	switch v {
	case ViewDayGridMonth, ViewTimeGridWeek, ViewTimeGridDay, ViewListWeek:
		return true
	}
	return false
}
