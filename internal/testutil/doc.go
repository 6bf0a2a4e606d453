// Package testutil holds test doubles shared by the command tests: a scripted
// answerer for the overwrite prompt and a golden-file assertion.
package testutil
