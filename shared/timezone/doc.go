// Package timezone provides timezone and calendar-date utilities for the application.
//
// Usage Examples:
//
//  1. Current instant and current date:
//     now := timezone.Now()      // current time in app timezone
//     today := timezone.Today()  // current calendar date in app timezone
//
//  2. Calendar dates:
//     d, err := timezone.ParseDate("2024-01-01")
//     s := timezone.FormatDate(d)
//     nights := timezone.DaysBetween(checkin, checkout)
//     ok := timezone.InRange(today, vipStart, vipExpiry)
//
// Calendar dates are carried as time.Time values at midnight UTC. Only the
// meaning of "today" depends on the configured location.
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
