// Package errors provides the classified error type used across feguide.
//
// Errors carry a category (config, validation, content, render, ...), a
// severity and structured context. The fluent builder keeps construction
// uniform:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "read page").
//		WithContext("path", path).
//		Build()
//
// CLIErrorAdapter turns classified errors into exit codes and log lines.
package errors
