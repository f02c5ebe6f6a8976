package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/skylift/cfn"
)

type UpdateCmd struct {
	StackName           string   `arg:"" help:"Name of the stack to update."`
	TemplateFile        string   `short:"t" type:"existingfile" help:"Template file to submit."`
	UsePreviousTemplate bool     `help:"Reuse the stack's current template."`
	Param               []string `short:"P" help:"Stack parameter as Key=Value. Repeatable."`
	ParamFile           string   `help:"YAML file of stack parameters."`
	Set                 []string `help:"Placeholder value for the parameter file, key=value. Repeatable."`
	Capability          []string `help:"IAM capability to acknowledge, e.g. CAPABILITY_IAM. Repeatable."`
}

func (c *UpdateCmd) Run(svc *cfn.Service, creds cfn.Credentials) error {
	if c.TemplateFile == "" && !c.UsePreviousTemplate {
		return errors.New("either --template-file or --use-previous-template is required")
	}

	params := map[string]any{"stack-name": c.StackName}
	if c.TemplateFile != "" {
		body, err := os.ReadFile(c.TemplateFile)
		if err != nil {
			return errors.Wrapf(err, "reading template %s", c.TemplateFile)
		}
		params["template-body"] = string(body)
	} else {
		params["use-previous-template"] = true
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

	id, err := svc.UpdateStack(context.Background(), creds, params)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}
