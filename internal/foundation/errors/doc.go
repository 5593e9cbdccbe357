// Package errors provides the classified errors used across modeldocs.
//
// A ClassifiedError carries a category (config, template, filesystem, ...),
// a severity and a context naming the inputs involved. ErrorBuilder creates
// them; CLIErrorAdapter turns them into a one-line message and an exit code:
//
//	validation 2, config 7, template 7, git 8, internal 10, filesystem 11,
//	anything unclassified 1.
package errors
