package domain

import "errors"

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrInvalidInput is an error thrown when a request field is malformed
var ErrInvalidInput = errors.New("invalid input")

// ErrMissingFile is an error thrown when an upload carries no media file
var ErrMissingFile = errors.New(`no file uploaded with name "media"`)

// ErrMultipleFiles is an error thrown when an upload carries more than one media file
var ErrMultipleFiles = errors.New("only one media file is allowed per upload")

// ErrPayloadTooLarge is an error thrown when an upload exceeds the size limit
var ErrPayloadTooLarge = errors.New("file size limit exceeded")

// ErrInvalidForm is an error thrown when the multipart body cannot be parsed
var ErrInvalidForm = errors.New("error parsing form data")

// ErrImageCompression is an error thrown when an image cannot be re-encoded
var ErrImageCompression = errors.New("image compression failed")

// ErrTranscodeFailed is an error thrown when every transcode strategy failed
var ErrTranscodeFailed = errors.New("all transcode strategies failed")

// ErrStorageUnavailable is an error thrown when no object store is configured
var ErrStorageUnavailable = errors.New("storage bucket not available")

// ErrObjectUpload is an error thrown when the object store rejects an upload
var ErrObjectUpload = errors.New("object upload failed")

// ErrPersistence is an error thrown when records could not be written after the object was stored
var ErrPersistence = errors.New("uploaded object may need manual reconciliation")

// ErrMediaNotFound is an error thrown when media is not found
var ErrMediaNotFound = errors.New("media not found")

// ErrGuestNotFound is an error thrown when guest is not found
var ErrGuestNotFound = errors.New("guest not found")

// ErrWishNotFound is an error thrown when wish is not found
var ErrWishNotFound = errors.New("wish not found")

// ErrReminderNotFound is an error thrown when reminder is not found
var ErrReminderNotFound = errors.New("reminder not found")

// ErrSectionNotFound is an error thrown when section is not found
var ErrSectionNotFound = errors.New("section not found")

// ErrSettingNotFound is an error thrown when a settings category is not found
var ErrSettingNotFound = errors.New("settings category not found")

// ErrAdminNotConfigured is an error thrown when admin credentials were never seeded
var ErrAdminNotConfigured = errors.New("admin credentials not set")

// ErrInvalidCredentials is an error thrown when login fails
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is an error thrown when a token cannot be verified
var ErrInvalidToken = errors.New("invalid token")

// ErrForbidden is an error thrown when a privileged action is not allowed
var ErrForbidden = errors.New("forbidden")

// ErrPublishFailed is an error thrown when a message could not be published
var ErrPublishFailed = errors.New("publish failed")
