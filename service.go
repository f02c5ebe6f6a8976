package cfn

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ServiceOption configures a [Service].
type ServiceOption func(*Service)

// WithLogger sets the logger used for operation-level debug logging.
func WithLogger(log *zap.Logger) ServiceOption {
	return func(s *Service) { s.log = log }
}

// Service exposes the CloudFormation stack operations over plain maps.
// All methods are single blocking calls against the service; failures
// propagate unmodified (use [DecodeErrors] to render them).
type Service struct {
	pool *ClientPool
	log  *zap.Logger
}

// New creates a Service on top of a caller-owned client pool.
func New(pool *ClientPool, opts ...ServiceOption) *Service {
	s := &Service{pool: pool, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DescribeStacks returns all stacks visible to the credentials,
// following pagination, each converted to its map form.
func (s *Service) DescribeStacks(ctx context.Context, creds Credentials) ([]map[string]any, error) {
	return s.describe(ctx, creds, nil)
}

// DescribeStack returns the named stack (the service may still return
// several entries for nested stacks), converted to map form.
func (s *Service) DescribeStack(ctx context.Context, creds Credentials, stackName string) ([]map[string]any, error) {
	return s.describe(ctx, creds, aws.String(stackName))
}

func (s *Service) describe(ctx context.Context, creds Credentials, stackName *string) ([]map[string]any, error) {
	client, err := s.pool.Get(ctx, creds)
	if err != nil {
		return nil, err
	}

	var stacks []map[string]any
	pager := cloudformation.NewDescribeStacksPaginator(client, &cloudformation.DescribeStacksInput{
		StackName: stackName,
	})
	for pager.HasMorePages() {
		out, err := pager.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "describing stacks")
		}
		for _, stack := range out.Stacks {
			stacks = append(stacks, ToMap(stack))
		}
	}
	s.log.Debug("described stacks",
		zap.Stringp("stack_name", stackName),
		zap.Int("count", len(stacks)))
	return stacks, nil
}

// GetTemplate returns the raw template body of the named stack,
// verbatim as the service stores it.
func (s *Service) GetTemplate(ctx context.Context, creds Credentials, stackName string) (string, error) {
	client, err := s.pool.Get(ctx, creds)
	if err != nil {
		return "", err
	}
	out, err := client.GetTemplate(ctx, &cloudformation.GetTemplateInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return "", errors.Wrapf(err, "getting template for %s", stackName)
	}
	return aws.ToString(out.TemplateBody), nil
}

// EstimateTemplateCost submits a template body and returns the AWS
// Simple Monthly Calculator URL the service responds with.
func (s *Service) EstimateTemplateCost(ctx context.Context, creds Credentials, templateBody string) (string, error) {
	client, err := s.pool.Get(ctx, creds)
	if err != nil {
		return "", err
	}
	out, err := client.EstimateTemplateCost(ctx, &cloudformation.EstimateTemplateCostInput{
		TemplateBody: aws.String(templateBody),
	})
	if err != nil {
		return "", errors.Wrap(err, "estimating template cost")
	}
	return aws.ToString(out.Url), nil
}

// CreateStack builds a CreateStackInput from the parameter map and
// submits it, returning the new stack id.
func (s *Service) CreateStack(ctx context.Context, creds Credentials, params map[string]any) (string, error) {
	client, err := s.pool.Get(ctx, creds)
	if err != nil {
		return "", err
	}
	in, err := NewCreateStackInput(params)
	if err != nil {
		return "", err
	}
	out, err := client.CreateStack(ctx, in)
	if err != nil {
		return "", errors.Wrapf(err, "creating stack %s", aws.ToString(in.StackName))
	}
	s.log.Info("created stack",
		zap.Stringp("stack_name", in.StackName),
		zap.Stringp("stack_id", out.StackId))
	return aws.ToString(out.StackId), nil
}

// UpdateStack builds an UpdateStackInput from the parameter map and
// submits it, returning the stack id.
func (s *Service) UpdateStack(ctx context.Context, creds Credentials, params map[string]any) (string, error) {
	client, err := s.pool.Get(ctx, creds)
	if err != nil {
		return "", err
	}
	in, err := NewUpdateStackInput(params)
	if err != nil {
		return "", err
	}
	out, err := client.UpdateStack(ctx, in)
	if err != nil {
		return "", errors.Wrapf(err, "updating stack %s", aws.ToString(in.StackName))
	}
	s.log.Info("updated stack",
		zap.Stringp("stack_name", in.StackName),
		zap.Stringp("stack_id", out.StackId))
	return aws.ToString(out.StackId), nil
}

// DeleteStack deletes the named stack. Deletion is asynchronous on the
// service side; this call only submits it.
func (s *Service) DeleteStack(ctx context.Context, creds Credentials, stackName string) error {
	client, err := s.pool.Get(ctx, creds)
	if err != nil {
		return err
	}
	if _, err := client.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: aws.String(stackName),
	}); err != nil {
		return errors.Wrapf(err, "deleting stack %s", stackName)
	}
	s.log.Info("deleted stack", zap.String("stack_name", stackName))
	return nil
}
