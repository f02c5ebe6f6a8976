package cfn

import (
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// DecodeError flattens a service error chain into a plain map with
// error-code, error-type, service-name, and status-code keys. Errors
// that carry no service metadata still decode; the missing fields stay
// at their zero values so callers can always render the result.
func DecodeError(err error) map[string]any {
	m := map[string]any{
		"error-code":   "",
		"error-type":   "",
		"service-name": "",
		"status-code":  0,
	}
	if err == nil {
		return m
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		m["error-code"] = apiErr.ErrorCode()
		m["error-type"] = apiErr.ErrorFault().String()
	}
	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		m["service-name"] = opErr.Service()
	}
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		m["status-code"] = respErr.HTTPStatusCode()
	}
	return m
}

// DecodeErrors decodes a batch of caught service errors for display or
// logging.
func DecodeErrors(errs ...error) []map[string]any {
	return lo.Map(errs, func(err error, _ int) map[string]any { return DecodeError(err) })
}
