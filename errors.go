package genimg

import (
	"errors"
	"fmt"
)

// MissingCredentialError means no API key was supplied for the selected
// provider.
type MissingCredentialError struct {
	Provider Provider
	EnvVar   string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: missing credential: set %s or pass the key in Config", e.Provider, e.EnvVar)
}

// UnsupportedProviderError means the provider tag is outside the known set.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider %q (known: %s, %s)", e.Provider, ProviderOpenAI, ProviderReplicate)
}

// InvalidOptionError means a generation option failed validation before any
// request was built.
type InvalidOptionError struct {
	Option string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Option, e.Reason)
}

// ProviderRequestError means the remote call failed or returned no usable
// image data. It wraps the underlying provider error.
type ProviderRequestError struct {
	Provider Provider
	Cause    error
}

func (e *ProviderRequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Cause)
	}
	return fmt.Sprintf("%s request failed", e.Provider)
}

func (e *ProviderRequestError) Unwrap() error { return e.Cause }

// FilesystemError means an output write or existence check failed.
type FilesystemError struct {
	Path  string
	Cause error
}

func (e *FilesystemError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("filesystem error at %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("filesystem error: %v", e.Cause)
}

func (e *FilesystemError) Unwrap() error { return e.Cause }

func IsMissingCredential(err error) bool {
	var e *MissingCredentialError
	return errors.As(err, &e)
}

func IsUnsupportedProvider(err error) bool {
	var e *UnsupportedProviderError
	return errors.As(err, &e)
}

func IsInvalidOption(err error) bool {
	var e *InvalidOptionError
	return errors.As(err, &e)
}

func IsProviderRequest(err error) bool {
	var e *ProviderRequestError
	return errors.As(err, &e)
}

func IsFilesystem(err error) bool {
	var e *FilesystemError
	return errors.As(err, &e)
}
