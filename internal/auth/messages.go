package auth

import (
	"errors"

	"github.com/SameedIlyas/Cloud-Project/internal/api"
)

// User-facing error texts for the auth flows. These are fixed product strings
// and are not localized.
const (
	MsgInvalidCredentials = "Invalid credentials. Please try again."
	MsgDuplicateUser      = "Username already exists or error creating user."
	MsgUnreachable        = "Unable to connect to the server. Please try again later."
	MsgGenericError       = "An error occurred."
	MsgTokenInvalid       = "Token is invalid, please log in again."
)

// LoginErrorText maps a login failure to the message shown inline on the
// login form.
func LoginErrorText(err error) string {
	switch api.KindOf(err) {
	case api.KindInvalidCredentials:
		return MsgInvalidCredentials
	case api.KindUnreachable:
		return MsgUnreachable
	default:
		return serverMessage(err)
	}
}

// SignupErrorText maps a registration failure to the message shown inline on
// the signup form.
func SignupErrorText(err error) string {
	switch api.KindOf(err) {
	case api.KindDuplicateOrInvalid:
		return MsgDuplicateUser
	case api.KindUnreachable:
		return MsgUnreachable
	default:
		return serverMessage(err)
	}
}

// serverMessage surfaces the body message of a rejected request when one was
// received, the generic fallback otherwise.
func serverMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return MsgGenericError
}
