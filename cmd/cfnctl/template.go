package main

import (
	"context"
	"fmt"

	"github.com/skylift/cfn"
)

type TemplateCmd struct {
	StackName string `arg:"" help:"Stack to read the template from."`
}

func (c *TemplateCmd) Run(svc *cfn.Service, creds cfn.Credentials) error {
	body, err := svc.GetTemplate(context.Background(), creds, c.StackName)
	if err != nil {
		return err
	}
	fmt.Println(body)
	return nil
}
