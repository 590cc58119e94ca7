// Package repository gives each collection a single owner: products,
// cashiers and orders each get one repository over the shared store,
// and nothing else writes those keys.
package repository

import "errors"

// ErrRecordNotFound is returned by mutations whose target id does not
// exist. Services translate it into their own taxonomy.
var ErrRecordNotFound = errors.New("record not found")
