package cfn_test

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/skylift/cfn"
)

func TestToMap_Nil(t *testing.T) {
	t.Parallel()
	if got := cfn.ToMap(nil); got != nil {
		t.Errorf("ToMap(nil): got %v, want nil", got)
	}
	var stack *types.Stack
	if got := cfn.ToMap(stack); got != nil {
		t.Errorf("ToMap((*Stack)(nil)): got %v, want nil", got)
	}
}

func TestToMap_UnknownShape(t *testing.T) {
	t.Parallel()
	if got := cfn.ToMap(struct{ X int }{X: 1}); got != nil {
		t.Errorf("unknown shape: got %v, want nil", got)
	}
	if got := cfn.ToMap(42); got != nil {
		t.Errorf("int: got %v, want nil", got)
	}
}

func TestToMap_Stack(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)
	s := types.Stack{
		Capabilities:      []types.Capability{types.CapabilityCapabilityIam},
		CreationTime:      &created,
		Description:       aws.String("demo stack"),
		DisableRollback:   aws.Bool(false),
		LastUpdatedTime:   &updated,
		NotificationARNs:  []string{"arn:aws:sns:us-east-1:123456789012:topic"},
		Outputs:           []types.Output{{Description: aws.String("endpoint"), OutputKey: aws.String("URL"), OutputValue: aws.String("https://example.com")}},
		Parameters:        []types.Parameter{{ParameterKey: aws.String("KeyName"), ParameterValue: aws.String("foo")}},
		StackId:           aws.String("arn:aws:cloudformation:us-east-1:123456789012:stack/demo/guid"),
		StackName:         aws.String("demo"),
		StackStatus:       types.StackStatusCreateComplete,
		StackStatusReason: aws.String("ok"),
		Tags:              []types.Tag{{Key: aws.String("team"), Value: aws.String("infra")}},
		TimeoutInMinutes:  aws.Int32(30),
	}

	m := cfn.ToMap(s)
	if m == nil {
		t.Fatal("got nil map")
	}
	if len(m) != 14 {
		t.Errorf("got %d fields, want 14: %v", len(m), m)
	}
	if m["stack-name"] != "demo" {
		t.Errorf("stack-name: got %v", m["stack-name"])
	}
	if m["stack-status"] != "CREATE_COMPLETE" {
		t.Errorf("stack-status: got %v", m["stack-status"])
	}
	if m["creation-time"] != created {
		t.Errorf("creation-time: got %v", m["creation-time"])
	}
	if m["last-updated-time"] != updated {
		t.Errorf("last-updated-time: got %v", m["last-updated-time"])
	}
	if m["disable-rollback"] != false {
		t.Errorf("disable-rollback: got %v", m["disable-rollback"])
	}
	if m["timeout-in-minutes"] != int32(30) {
		t.Errorf("timeout-in-minutes: got %v", m["timeout-in-minutes"])
	}

	caps := m["capabilities"].([]string)
	if len(caps) != 1 || caps[0] != "CAPABILITY_IAM" {
		t.Errorf("capabilities: got %v", caps)
	}

	outputs := m["outputs"].([]map[string]any)
	if len(outputs) != 1 || outputs[0]["output-key"] != "URL" || outputs[0]["output-value"] != "https://example.com" {
		t.Errorf("outputs: got %v", outputs)
	}
	params := m["parameters"].([]map[string]any)
	if len(params) != 1 || params[0]["parameter-key"] != "KeyName" || params[0]["parameter-value"] != "foo" {
		t.Errorf("parameters: got %v", params)
	}
	tags := m["tags"].([]map[string]any)
	if len(tags) != 1 || tags[0]["key"] != "team" || tags[0]["value"] != "infra" {
		t.Errorf("tags: got %v", tags)
	}
}

func TestToMap_StackAbsentFieldsAreNil(t *testing.T) {
	t.Parallel()
	m := cfn.ToMap(types.Stack{StackName: aws.String("bare")})
	if m["description"] != nil {
		t.Errorf("description: got %v, want nil", m["description"])
	}
	if m["last-updated-time"] != nil {
		t.Errorf("last-updated-time: got %v, want nil", m["last-updated-time"])
	}
	if m["timeout-in-minutes"] != nil {
		t.Errorf("timeout-in-minutes: got %v, want nil", m["timeout-in-minutes"])
	}
}

func TestToMap_DescribeStacksOutput(t *testing.T) {
	t.Parallel()
	out := &cloudformation.DescribeStacksOutput{
		NextToken: aws.String("page-2"),
		Stacks: []types.Stack{
			{StackName: aws.String("one")},
			{StackName: aws.String("two")},
		},
	}
	m := cfn.ToMap(out)
	if m["next-token"] != "page-2" {
		t.Errorf("next-token: got %v", m["next-token"])
	}
	stacks := m["stacks"].([]map[string]any)
	if len(stacks) != 2 || stacks[0]["stack-name"] != "one" || stacks[1]["stack-name"] != "two" {
		t.Errorf("stacks: got %v", stacks)
	}
}

func TestToMap_LeafShapes(t *testing.T) {
	t.Parallel()
	o := cfn.ToMap(types.Output{OutputKey: aws.String("K"), OutputValue: aws.String("V")})
	if o["output-key"] != "K" || o["output-value"] != "V" || o["description"] != nil {
		t.Errorf("output: got %v", o)
	}
	p := cfn.ToMap(&types.Parameter{ParameterKey: aws.String("K"), ParameterValue: aws.String("V")})
	if p["parameter-key"] != "K" || p["parameter-value"] != "V" {
		t.Errorf("parameter: got %v", p)
	}
	tag := cfn.ToMap(types.Tag{Key: aws.String("K"), Value: aws.String("V")})
	if tag["key"] != "K" || tag["value"] != "V" {
		t.Errorf("tag: got %v", tag)
	}
}
