package main

import (
	"context"

	"github.com/skylift/cfn"
)

type DeleteCmd struct {
	StackName string `arg:"" help:"Name of the stack to delete."`
}

func (c *DeleteCmd) Run(svc *cfn.Service, creds cfn.Credentials) error {
	return svc.DeleteStack(context.Background(), creds, c.StackName)
}
