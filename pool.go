package cfn

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// CloudFormationAPI is the subset of the CloudFormation client this
// library calls. *cloudformation.Client satisfies it; tests substitute
// fakes through [WithClientFactory].
type CloudFormationAPI interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	GetTemplate(ctx context.Context, params *cloudformation.GetTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.GetTemplateOutput, error)
	EstimateTemplateCost(ctx context.Context, params *cloudformation.EstimateTemplateCostInput, optFns ...func(*cloudformation.Options)) (*cloudformation.EstimateTemplateCostOutput, error)
	CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error)
	UpdateStack(ctx context.Context, params *cloudformation.UpdateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error)
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
}

// ConfigLoader resolves an aws.Config for a credential value.
type ConfigLoader func(ctx context.Context, creds Credentials) (aws.Config, error)

// ClientFactory builds a client from a resolved config.
type ClientFactory func(cfg aws.Config) CloudFormationAPI

// PoolOption configures a [ClientPool].
type PoolOption func(*ClientPool)

// WithConfigLoader replaces the default aws.Config resolution.
func WithConfigLoader(load ConfigLoader) PoolOption {
	return func(p *ClientPool) { p.loadConfig = load }
}

// WithClientFactory replaces the default client construction. Useful in
// tests to avoid touching the network entirely.
func WithClientFactory(factory ClientFactory) PoolOption {
	return func(p *ClientPool) { p.factory = factory }
}

// WithPoolLogger sets the logger used for client construction events.
func WithPoolLogger(log *zap.Logger) PoolOption {
	return func(p *ClientPool) { p.log = log }
}

// WithTracerProvider instruments every constructed client with
// OpenTelemetry middleware for AWS SDK tracing.
func WithTracerProvider(tp trace.TracerProvider) PoolOption {
	return func(p *ClientPool) { p.tracerProvider = tp }
}

// ClientPool memoizes CloudFormation clients per credential value.
//
// The pool is owned by the caller and lives as long as the caller keeps
// it: there is no eviction and no expiry. Get is safe for concurrent
// use and constructs at most one client per distinct [Credentials]
// value.
type ClientPool struct {
	mu      sync.Mutex
	clients map[Credentials]CloudFormationAPI

	loadConfig     ConfigLoader
	factory        ClientFactory
	tracerProvider trace.TracerProvider
	log            *zap.Logger
}

// NewClientPool creates an empty pool with default SDK construction.
func NewClientPool(opts ...PoolOption) *ClientPool {
	p := &ClientPool{
		clients:    make(map[Credentials]CloudFormationAPI),
		loadConfig: loadDefaultConfig,
		factory: func(cfg aws.Config) CloudFormationAPI {
			return cloudformation.NewFromConfig(cfg)
		},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns the cached client for creds, constructing it on first
// use. Construction errors are not cached; a later call retries.
func (p *ClientPool) Get(ctx context.Context, creds Credentials) (CloudFormationAPI, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.clients[creds]; ok {
		return client, nil
	}

	cfg, err := p.loadConfig(ctx, creds)
	if err != nil {
		return nil, errors.Wrap(err, "loading AWS config")
	}
	if p.tracerProvider != nil {
		otelaws.AppendMiddlewares(&cfg.APIOptions,
			otelaws.WithTracerProvider(p.tracerProvider))
	}

	client := p.factory(cfg)
	p.clients[creds] = client
	p.log.Debug("constructed cloudformation client",
		zap.Bool("static_credentials", creds.Static()),
		zap.String("region", cfg.Region))
	return client, nil
}

// Len reports how many distinct clients the pool currently holds.
func (p *ClientPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.clients)
}

func loadDefaultConfig(ctx context.Context, creds Credentials) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if creds.Region != "" {
		opts = append(opts, awsconfig.WithRegion(creds.Region))
	}
	if creds.Static() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKey, creds.SecretKey, "")))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
