package main

import (
	"context"
	"fmt"
	"os"

	"github.com/skylift/cfn"
	"github.com/skylift/cfn/cmd/internal/render"
)

type DescribeCmd struct {
	StackName string `arg:"" optional:"" help:"Limit output to one stack."`
}

func (c *DescribeCmd) Run(svc *cfn.Service, creds cfn.Credentials) error {
	ctx := context.Background()

	var stacks []map[string]any
	var err error
	if c.StackName != "" {
		stacks, err = svc.DescribeStack(ctx, creds, c.StackName)
	} else {
		stacks, err = svc.DescribeStacks(ctx, creds)
	}
	if err != nil {
		return err
	}

	for i, stack := range stacks {
		if i > 0 {
			fmt.Println()
		}
		if err := render.Map(os.Stdout, stack); err != nil {
			return err
		}
	}
	return nil
}
