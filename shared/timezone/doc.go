// Package timezone pins booking dates to the application timezone.
//
// Dates arrive as calendar days ("2025-06-14") or full timestamps. Both are read in the
// location named by APP_TIMEZONE, so "today" and the night count of a stay do not shift
// with the server's local zone:
//
//	start, err := timezone.ParseInput("2025-06-14")
//	if err != nil { ... }
//	if start.Before(timezone.StartOfDay(clock())) { ... }
//
// Services take a Clock rather than calling Now directly so tests can fix the current time.
// APP_TIMEZONE must be an IANA name such as "UTC" or "Asia/Jakarta"; an unknown name falls
// back to UTC with a warning.
package timezone
