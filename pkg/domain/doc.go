// Package domain contains the entities the scan runner works with: scan
// tasks and their runs, scan profiles, the vulnerabilities extracted from
// scanner reports and the notification preference of the task owner. The
// types are free of infrastructure concerns so they can be shared across
// packages.
package domain
