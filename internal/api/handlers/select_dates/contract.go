package select_dates

import (
	"time"

	"github.com/m04kA/sommerhus-booking/internal/selection"
)

type Selector interface {
	Click(date time.Time) selection.Result
	Cancel() selection.Result
	Current() selection.Result
}

type Clock interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
