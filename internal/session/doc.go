// Package session collects raw activity data for a work session: git
// history and working-tree state, beads issue-tracker status, and an
// optional GitHub issue snapshot.
//
// Collectors are thin and tolerant: a missing repository, a missing bd
// binary, or an unreachable GitHub API all degrade to an "available: false"
// section instead of failing the gather.
package session
