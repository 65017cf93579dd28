// Package repositories holds the shared machinery for translating one
// remote call's outcome into a Resource. The per-domain repositories live
// in the subpackages auth, networth and portfolio.
package repositories

import (
	"github.com/pisystem/client/internal/api"
	"github.com/pisystem/client/internal/resource"
	"github.com/tidwall/gjson"
)

// genericErrorMessage is the last-resort display message for transport
// faults that carry no text of their own.
const genericErrorMessage = "An error occurred"

// MapOutcome converts a round-trip outcome into a Resource[T].
//
// Rules, in order:
//
//  1. A transport-level fault (err != nil) becomes Error with the fault's
//     message, or a generic message when it has none. The fault itself never
//     reaches the caller.
//  2. A 2xx response with a body is decoded into T and becomes Success.
//     A decode fault on a 2xx body is reported like a transport fault.
//  3. A 2xx response with an empty body is treated as a failure and yields
//     the fallback message (inherited behavior, kept deliberately).
//  4. Any other response has its body probed for a "message" field, decoded
//     with the success schema's tolerance (every field optional). A present
//     message wins; a well-formed body without one yields fallback; a body
//     that does not decode at all yields undecodable.
func MapOutcome[T any](resp *api.Response, err error, fallback, undecodable string) resource.Resource[T] {
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = genericErrorMessage
		}
		return resource.Error[T](msg)
	}

	if resp.IsSuccess() && len(resp.Body) > 0 {
		var decoded T
		if jsonErr := resp.JSON(&decoded); jsonErr != nil {
			msg := jsonErr.Error()
			if msg == "" {
				msg = genericErrorMessage
			}
			return resource.Error[T](msg)
		}
		return resource.Success(decoded)
	}

	return resource.Error[T](errorMessage(resp.Body, fallback, undecodable))
}

// errorMessage extracts a display message from an error body.
func errorMessage(body []byte, fallback, undecodable string) string {
	if len(body) == 0 {
		return fallback
	}
	if !gjson.ValidBytes(body) {
		return undecodable
	}
	if msg := gjson.GetBytes(body, "message"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	return fallback
}
