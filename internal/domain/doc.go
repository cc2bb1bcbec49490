// Package domain defines the core entities of the carddown system: cards
// extracted from markdown files, their per-card scheduling state, and the
// cross-card global statistics shared by all algorithms.
package domain
