// Package locator answers point-in-time location queries against a parsed
// GPX track by temporal bracketing.
//
// Given a track with non-decreasing timestamps and a query time, Locate finds
// the consecutive pair of points whose timestamps bound the query and reports
// the earlier point's coordinates. Queries outside the track's time span
// resolve to the nearest end point, flagged as out of range, so a caller
// always gets the best-known position.
package locator
