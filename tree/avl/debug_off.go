//go:build !avldebug

package avl

const debugChecks = false
