package cfn

import (
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/cockroachdb/errors"
	"github.com/iancoleman/strcase"
)

// UnknownFieldError reports a parameter key that does not address any
// settable field on the target request type. Keys are never silently
// dropped.
type UnknownFieldError struct {
	Key    string
	Target string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("no field %q on %s", e.Key, e.Target)
}

// fieldTable maps a kebab-case parameter key to a typed setter on the
// request struct. One table per request type, built at compile time.
type fieldTable[T any] map[string]func(target *T, value any) error

// populate applies each entry of params to target through its field
// table. Keys are normalized to kebab-case first, so "StackName",
// "stack_name", and "stack-name" all address the same field.
func populate[T any](target *T, table fieldTable[T], typeName string, params map[string]any) error {
	for key, value := range params {
		set, ok := table[strcase.ToKebab(key)]
		if !ok {
			return &UnknownFieldError{Key: key, Target: typeName}
		}
		if err := set(target, value); err != nil {
			return errors.Wrapf(err, "field %q on %s", key, typeName)
		}
	}
	return nil
}

// NewCreateStackInput builds a CreateStackInput from a flat parameter
// map. Unknown keys fail with [UnknownFieldError].
func NewCreateStackInput(params map[string]any) (*cloudformation.CreateStackInput, error) {
	in := &cloudformation.CreateStackInput{}
	if err := populate(in, createStackFields, "CreateStackInput", params); err != nil {
		return nil, err
	}
	return in, nil
}

// NewUpdateStackInput builds an UpdateStackInput from a flat parameter
// map. Unknown keys fail with [UnknownFieldError].
func NewUpdateStackInput(params map[string]any) (*cloudformation.UpdateStackInput, error) {
	in := &cloudformation.UpdateStackInput{}
	if err := populate(in, updateStackFields, "UpdateStackInput", params); err != nil {
		return nil, err
	}
	return in, nil
}

var createStackFields = fieldTable[cloudformation.CreateStackInput]{
	"stack-name": func(in *cloudformation.CreateStackInput, v any) error {
		return setString(&in.StackName, v)
	},
	"template-body": func(in *cloudformation.CreateStackInput, v any) error {
		return setString(&in.TemplateBody, v)
	},
	"template-url": func(in *cloudformation.CreateStackInput, v any) error {
		return setString(&in.TemplateURL, v)
	},
	"parameters": func(in *cloudformation.CreateStackInput, v any) error {
		ps, err := toParameterList(v)
		if err != nil {
			return err
		}
		in.Parameters = ps
		return nil
	},
	"capabilities": func(in *cloudformation.CreateStackInput, v any) error {
		caps, err := toCapabilityList(v)
		if err != nil {
			return err
		}
		in.Capabilities = caps
		return nil
	},
	"notification-arns": func(in *cloudformation.CreateStackInput, v any) error {
		arns, err := toStringSlice(v)
		if err != nil {
			return err
		}
		in.NotificationARNs = arns
		return nil
	},
	"tags": func(in *cloudformation.CreateStackInput, v any) error {
		tags, err := toTagList(v)
		if err != nil {
			return err
		}
		in.Tags = tags
		return nil
	},
	"role-arn": func(in *cloudformation.CreateStackInput, v any) error {
		return setString(&in.RoleARN, v)
	},
	"on-failure": func(in *cloudformation.CreateStackInput, v any) error {
		s, err := toString(v)
		if err != nil {
			return err
		}
		in.OnFailure = types.OnFailure(s)
		return nil
	},
	"disable-rollback": func(in *cloudformation.CreateStackInput, v any) error {
		return setBool(&in.DisableRollback, v)
	},
	"timeout-in-minutes": func(in *cloudformation.CreateStackInput, v any) error {
		return setInt32(&in.TimeoutInMinutes, v)
	},
	"stack-policy-body": func(in *cloudformation.CreateStackInput, v any) error {
		return setString(&in.StackPolicyBody, v)
	},
	"stack-policy-url": func(in *cloudformation.CreateStackInput, v any) error {
		return setString(&in.StackPolicyURL, v)
	},
}

var updateStackFields = fieldTable[cloudformation.UpdateStackInput]{
	"stack-name": func(in *cloudformation.UpdateStackInput, v any) error {
		return setString(&in.StackName, v)
	},
	"template-body": func(in *cloudformation.UpdateStackInput, v any) error {
		return setString(&in.TemplateBody, v)
	},
	"template-url": func(in *cloudformation.UpdateStackInput, v any) error {
		return setString(&in.TemplateURL, v)
	},
	"use-previous-template": func(in *cloudformation.UpdateStackInput, v any) error {
		return setBool(&in.UsePreviousTemplate, v)
	},
	"parameters": func(in *cloudformation.UpdateStackInput, v any) error {
		ps, err := toParameterList(v)
		if err != nil {
			return err
		}
		in.Parameters = ps
		return nil
	},
	"capabilities": func(in *cloudformation.UpdateStackInput, v any) error {
		caps, err := toCapabilityList(v)
		if err != nil {
			return err
		}
		in.Capabilities = caps
		return nil
	},
	"notification-arns": func(in *cloudformation.UpdateStackInput, v any) error {
		arns, err := toStringSlice(v)
		if err != nil {
			return err
		}
		in.NotificationARNs = arns
		return nil
	},
	"tags": func(in *cloudformation.UpdateStackInput, v any) error {
		tags, err := toTagList(v)
		if err != nil {
			return err
		}
		in.Tags = tags
		return nil
	},
	"role-arn": func(in *cloudformation.UpdateStackInput, v any) error {
		return setString(&in.RoleARN, v)
	},
	"disable-rollback": func(in *cloudformation.UpdateStackInput, v any) error {
		return setBool(&in.DisableRollback, v)
	},
	"stack-policy-body": func(in *cloudformation.UpdateStackInput, v any) error {
		return setString(&in.StackPolicyBody, v)
	},
	"stack-policy-url": func(in *cloudformation.UpdateStackInput, v any) error {
		return setString(&in.StackPolicyURL, v)
	},
	"stack-policy-during-update-body": func(in *cloudformation.UpdateStackInput, v any) error {
		return setString(&in.StackPolicyDuringUpdateBody, v)
	},
	"stack-policy-during-update-url": func(in *cloudformation.UpdateStackInput, v any) error {
		return setString(&in.StackPolicyDuringUpdateURL, v)
	},
}

func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.Newf("expected string, got %T", v)
	}
	return s, nil
}

func setString(dst **string, v any) error {
	s, err := toString(v)
	if err != nil {
		return err
	}
	*dst = aws.String(s)
	return nil
}

func setBool(dst **bool, v any) error {
	b, ok := v.(bool)
	if !ok {
		return errors.Newf("expected bool, got %T", v)
	}
	*dst = aws.Bool(b)
	return nil
}

// setInt32 coerces the common numeric types to the int32 the SDK
// expects. Non-numeric values are rejected; no wider coercion is done.
func setInt32(dst **int32, v any) error {
	switch n := v.(type) {
	case int32:
		*dst = aws.Int32(n)
	case int:
		*dst = aws.Int32(int32(n))
	case int64:
		*dst = aws.Int32(int32(n))
	case float64:
		*dst = aws.Int32(int32(n))
	default:
		return errors.Newf("expected integer, got %T", v)
	}
	return nil
}

func toStringSlice(v any) ([]string, error) {
	switch s := v.(type) {
	case []string:
		return s, nil
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, err := toString(e)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, errors.Newf("expected string list, got %T", v)
	}
}

func toCapabilityList(v any) ([]types.Capability, error) {
	ss, err := toStringSlice(v)
	if err != nil {
		return nil, err
	}
	caps := make([]types.Capability, len(ss))
	for i, s := range ss {
		caps[i] = types.Capability(s)
	}
	return caps, nil
}

// toParameterList turns a name-to-value map into an ordered Parameter
// list. Keys are sorted so the request payload is deterministic. An
// already-built []types.Parameter passes through untouched.
func toParameterList(v any) ([]types.Parameter, error) {
	switch m := v.(type) {
	case []types.Parameter:
		return m, nil
	case map[string]string:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ps := make([]types.Parameter, 0, len(keys))
		for _, k := range keys {
			ps = append(ps, types.Parameter{
				ParameterKey:   aws.String(k),
				ParameterValue: aws.String(m[k]),
			})
		}
		return ps, nil
	case map[string]any:
		flat := make(map[string]string, len(m))
		for k, e := range m {
			s, err := toString(e)
			if err != nil {
				return nil, errors.Wrapf(err, "parameter %q", k)
			}
			flat[k] = s
		}
		return toParameterList(flat)
	default:
		return nil, errors.Newf("expected parameter map, got %T", v)
	}
}

func toTagList(v any) ([]types.Tag, error) {
	switch m := v.(type) {
	case []types.Tag:
		return m, nil
	case map[string]string:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		tags := make([]types.Tag, 0, len(keys))
		for _, k := range keys {
			tags = append(tags, types.Tag{
				Key:   aws.String(k),
				Value: aws.String(m[k]),
			})
		}
		return tags, nil
	default:
		return nil, errors.Newf("expected tag map, got %T", v)
	}
}
