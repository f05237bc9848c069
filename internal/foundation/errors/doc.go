// Package errors provides the classified error primitives used across blogbuilder.
//
// Every failure that can abort a generation run is expressed as a ClassifiedError
// carrying a category (usage, template, filesystem, encoding, render, config,
// internal), a severity and structured context. The CLI adapter turns them into
// a one-line message and a process exit code.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "write page").
//		WithContext("path", dst).
//		Build()
package errors
