// Package common holds the pieces shared by the math and string modules:
// a prefixed console logger and a few small helpers.
package common
