// Package model contains all domain models and data structures for the bookpress system.
package model

const tablePrefix = "bookpress_"
