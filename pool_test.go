package cfn_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/cockroachdb/errors"
	"github.com/skylift/cfn"
)

func testPool(t *testing.T, constructions *atomic.Int32) *cfn.ClientPool {
	t.Helper()
	return cfn.NewClientPool(
		cfn.WithConfigLoader(func(ctx context.Context, creds cfn.Credentials) (aws.Config, error) {
			return aws.Config{Region: creds.Region}, nil
		}),
		cfn.WithClientFactory(func(cfg aws.Config) cfn.CloudFormationAPI {
			if constructions != nil {
				constructions.Add(1)
			}
			return &fakeClient{}
		}),
	)
}

func TestClientPool_Memoizes(t *testing.T) {
	t.Parallel()
	pool := testPool(t, nil)
	creds := cfn.Credentials{AccessKey: "AKID", SecretKey: "secret", Region: "us-east-1"}

	first, err := pool.Get(context.Background(), creds)
	if err != nil {
		t.Fatal(err)
	}
	second, err := pool.Get(context.Background(), creds)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("equal credentials must return the same client instance")
	}
	if pool.Len() != 1 {
		t.Errorf("Len: got %d, want 1", pool.Len())
	}
}

func TestClientPool_DistinctCredentials(t *testing.T) {
	t.Parallel()
	pool := testPool(t, nil)

	ambient, err := pool.Get(context.Background(), cfn.Credentials{})
	if err != nil {
		t.Fatal(err)
	}
	static, err := pool.Get(context.Background(), cfn.Credentials{AccessKey: "AKID", SecretKey: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if ambient == static {
		t.Error("distinct credentials must not share a client")
	}
	if pool.Len() != 2 {
		t.Errorf("Len: got %d, want 2", pool.Len())
	}
}

func TestClientPool_ConcurrentGetConstructsOnce(t *testing.T) {
	t.Parallel()
	var constructions atomic.Int32
	pool := testPool(t, &constructions)
	creds := cfn.Credentials{Region: "eu-central-1"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := pool.Get(context.Background(), creds); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if got := constructions.Load(); got != 1 {
		t.Errorf("constructed %d clients for one credential value, want 1", got)
	}
}

func TestClientPool_ConfigErrorNotCached(t *testing.T) {
	t.Parallel()
	calls := 0
	pool := cfn.NewClientPool(
		cfn.WithConfigLoader(func(ctx context.Context, creds cfn.Credentials) (aws.Config, error) {
			calls++
			if calls == 1 {
				return aws.Config{}, errors.New("no credentials available")
			}
			return aws.Config{}, nil
		}),
		cfn.WithClientFactory(func(cfg aws.Config) cfn.CloudFormationAPI {
			return &fakeClient{}
		}),
	)

	if _, err := pool.Get(context.Background(), cfn.Credentials{}); err == nil {
		t.Fatal("expected first Get to fail")
	}
	if _, err := pool.Get(context.Background(), cfn.Credentials{}); err != nil {
		t.Fatalf("second Get should retry construction: %v", err)
	}
	if pool.Len() != 1 {
		t.Errorf("Len: got %d, want 1", pool.Len())
	}
}
