//go:build avldebug

package avl

const debugChecks = true
