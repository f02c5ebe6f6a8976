package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/skylift/cfn"
)

type CreateCmd struct {
	StackName       string   `arg:"" help:"Name of the stack to create."`
	TemplateFile    string   `short:"t" required:"" type:"existingfile" help:"Template file to submit."`
	Param           []string `short:"P" help:"Stack parameter as Key=Value. Repeatable."`
	ParamFile       string   `help:"YAML file of stack parameters."`
	Set             []string `help:"Placeholder value for the parameter file, key=value. Repeatable."`
	Capability      []string `help:"IAM capability to acknowledge, e.g. CAPABILITY_IAM. Repeatable."`
	Timeout         int      `help:"Minutes before stack creation times out."`
	DisableRollback bool     `help:"Keep resources if creation fails."`
	OnFailure       string   `help:"Action on creation failure: DO_NOTHING, ROLLBACK, or DELETE."`
}

func (c *CreateCmd) Run(svc *cfn.Service, creds cfn.Credentials) error {
	body, err := os.ReadFile(c.TemplateFile)
	if err != nil {
		return errors.Wrapf(err, "reading template %s", c.TemplateFile)
	}

	params := map[string]any{
		"stack-name":    c.StackName,
		"template-body": string(body),
	}
	stackParams, err := stackParameters(c.ParamFile, c.Set, c.Param)
	if err != nil {
		return err
	}
	if len(stackParams) > 0 {
		params["parameters"] = stackParams
	}
	if len(c.Capability) > 0 {
		params["capabilities"] = c.Capability
	}
	if c.Timeout > 0 {
		params["timeout-in-minutes"] = c.Timeout
	}
	if c.DisableRollback {
		params["disable-rollback"] = true
	}
	if c.OnFailure != "" {
		params["on-failure"] = c.OnFailure
	}

	id, err := svc.CreateStack(context.Background(), creds, params)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}
