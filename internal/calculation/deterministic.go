package calculation

import "time"

// nowFunc stamps CalculationResult.GeneratedAt, the report date shown by every formatter.
var nowFunc = time.Now

// SetNowFunc pins the report date, so tests and golden outputs see a fixed GeneratedAt.
// Pass time.Now to restore the wall clock.
func SetNowFunc(f func() time.Time) {
	if f == nil {
		f = time.Now
	}
	nowFunc = f
}
