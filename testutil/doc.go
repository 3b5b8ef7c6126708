// Package testutil provides synthetic intensity volumes for tests.
package testutil
