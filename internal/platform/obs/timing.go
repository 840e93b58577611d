package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries the per-request correlation id set by the HTTP
// layer so service timings can be tied back to an upload request.
const RequestIDKey ctxKey = "req_id"

// Time logs the duration of a named operation when the returned
// function runs. Pass a pointer to the caller's named error so
// failures are logged together with the timing:
//
//	defer obs.Time(ctx, "process_survey")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
