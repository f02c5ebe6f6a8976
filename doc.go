// Package cfn is a thin convenience layer over the AWS CloudFormation API.
//
// It exposes the handful of stack operations (describe, get-template,
// estimate-cost, create, update, delete) through plain Go maps instead of
// SDK request and result structs. Request payloads are built from flat
// key-value maps with kebab-case keys, and results come back as nested
// maps in the same convention.
//
// # Usage
//
//	pool := cfn.NewClientPool()
//	svc := cfn.New(pool)
//
//	id, err := svc.CreateStack(ctx, cfn.Credentials{Region: "eu-central-1"}, map[string]any{
//	    "stack-name":    "demo",
//	    "template-body": body,
//	    "parameters":    map[string]string{"KeyName": "demo-key"},
//	})
//
// The library adds no behavior of its own: no retries, no validation, no
// waiting on stack lifecycle. Credential resolution, transport, and
// retry policy are all owned by the AWS SDK. Clients are memoized per
// credential value in a caller-owned [ClientPool].
//
// # Credentials
//
// A zero [Credentials] value uses the SDK's ambient credential chain
// (environment, shared config, instance metadata). Setting AccessKey and
// SecretKey switches to a static credential provider. Either way the
// resulting client is cached for the life of the pool.
//
// # Tracing
//
// Pass [WithTracerProvider] to instrument all SDK calls with
// OpenTelemetry middleware. No tracing is configured by default.
package cfn
