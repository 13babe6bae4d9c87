// Package throttle limits repeated failed logins using fixed-window
// counters in Redis.
package throttle
