// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Share is the predicate function for share builders.
type Share func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
