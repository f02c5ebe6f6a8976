package cfn

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/samber/lo"
)

// ToMap converts a known CloudFormation result shape into a nested
// plain map keyed by kebab-case names. nil input yields nil, and so
// does any value with no registered conversion; unknown shapes are not
// an error, they simply produce no map.
func ToMap(v any) map[string]any {
	switch x := v.(type) {
	case nil:
		return nil
	case *cloudformation.DescribeStacksOutput:
		if x == nil {
			return nil
		}
		return map[string]any{
			"next-token": strOrNil(x.NextToken),
			"stacks":     lo.Map(x.Stacks, func(s types.Stack, _ int) map[string]any { return stackMap(s) }),
		}
	case types.Stack:
		return stackMap(x)
	case *types.Stack:
		if x == nil {
			return nil
		}
		return stackMap(*x)
	case types.Output:
		return outputMap(x)
	case *types.Output:
		if x == nil {
			return nil
		}
		return outputMap(*x)
	case types.Parameter:
		return parameterMap(x)
	case *types.Parameter:
		if x == nil {
			return nil
		}
		return parameterMap(*x)
	case types.Tag:
		return tagMap(x)
	case *types.Tag:
		if x == nil {
			return nil
		}
		return tagMap(*x)
	case error:
		return DecodeError(x)
	default:
		return nil
	}
}

func stackMap(s types.Stack) map[string]any {
	return map[string]any{
		"capabilities":        lo.Map(s.Capabilities, func(c types.Capability, _ int) string { return string(c) }),
		"creation-time":       timeOrNil(s.CreationTime),
		"description":         strOrNil(s.Description),
		"disable-rollback":    boolOrNil(s.DisableRollback),
		"last-updated-time":   timeOrNil(s.LastUpdatedTime),
		"notification-arns":   s.NotificationARNs,
		"outputs":             lo.Map(s.Outputs, func(o types.Output, _ int) map[string]any { return outputMap(o) }),
		"parameters":          lo.Map(s.Parameters, func(p types.Parameter, _ int) map[string]any { return parameterMap(p) }),
		"stack-id":            strOrNil(s.StackId),
		"stack-name":          strOrNil(s.StackName),
		"stack-status":        string(s.StackStatus),
		"stack-status-reason": strOrNil(s.StackStatusReason),
		"tags":                lo.Map(s.Tags, func(t types.Tag, _ int) map[string]any { return tagMap(t) }),
		"timeout-in-minutes":  int32OrNil(s.TimeoutInMinutes),
	}
}

func outputMap(o types.Output) map[string]any {
	return map[string]any{
		"description":  strOrNil(o.Description),
		"output-key":   strOrNil(o.OutputKey),
		"output-value": strOrNil(o.OutputValue),
	}
}

func parameterMap(p types.Parameter) map[string]any {
	return map[string]any{
		"parameter-key":   strOrNil(p.ParameterKey),
		"parameter-value": strOrNil(p.ParameterValue),
	}
}

func tagMap(t types.Tag) map[string]any {
	return map[string]any{
		"key":   strOrNil(t.Key),
		"value": strOrNil(t.Value),
	}
}

func strOrNil(p *string) any {
	if p == nil {
		return nil
	}
	return aws.ToString(p)
}

func timeOrNil(p *time.Time) any {
	if p == nil {
		return nil
	}
	return *p
}

func boolOrNil(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}

func int32OrNil(p *int32) any {
	if p == nil {
		return nil
	}
	return *p
}
