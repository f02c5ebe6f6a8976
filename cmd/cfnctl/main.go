package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/skylift/cfn"
)

type App struct {
	Describe DescribeCmd `cmd:"" help:"Describe stacks, or a single stack by name."`
	Template TemplateCmd `cmd:"" help:"Print the raw template body of a stack."`
	Estimate EstimateCmd `cmd:"" help:"Estimate the monthly cost of a template."`
	Create   CreateCmd   `cmd:"" help:"Create a stack from a template."`
	Update   UpdateCmd   `cmd:"" help:"Update an existing stack."`
	Delete   DeleteCmd   `cmd:"" help:"Delete a stack."`
}

func main() {
	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(e.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	pool := cfn.NewClientPool(cfn.WithPoolLogger(log))
	svc := cfn.New(pool, cfn.WithLogger(log))
	creds := cfn.Credentials{
		AccessKey: e.AccessKey,
		SecretKey: e.SecretKey,
		Region:    e.Region,
	}

	var app App
	ctx := kong.Parse(&app,
		kong.Name("cfnctl"),
		kong.Description("Thin CloudFormation stack operations over plain maps."),
		kong.Bind(svc, creds),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
