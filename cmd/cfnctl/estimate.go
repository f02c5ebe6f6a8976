package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/skylift/cfn"
)

type EstimateCmd struct {
	TemplateFile string `arg:"" type:"existingfile" help:"Template to estimate."`
}

func (c *EstimateCmd) Run(svc *cfn.Service, creds cfn.Credentials) error {
	body, err := os.ReadFile(c.TemplateFile)
	if err != nil {
		return errors.Wrapf(err, "reading template %s", c.TemplateFile)
	}
	url, err := svc.EstimateTemplateCost(context.Background(), creds, string(body))
	if err != nil {
		return err
	}
	fmt.Println(url)
	return nil
}
