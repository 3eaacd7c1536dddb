// Package linkdrop turns an arbitrary URL (or pasted text) into a typed,
// enriched saved item. Given one input string it classifies the content
// into a closed taxonomy, gathers partial metadata from several
// independently-trustworthy sources, merges the partials under a fixed
// precedence policy, runs per-type post-processing, and emits a
// confidence score.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// goquery/, readability/); pipeline orchestration lives in pipeline/.
package linkdrop
