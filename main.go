// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/credwatch/credwatch/internal/command"
	"github.com/credwatch/credwatch/internal/config"
	"github.com/credwatch/credwatch/internal/handler"
	"github.com/credwatch/credwatch/internal/log"
	"github.com/credwatch/credwatch/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	// Under a Lambda runtime there is no CLI; the runtime drives invocations.
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		return runLambda()
	}

	args = handleNakedCommand(args)

	return initAndRunApp(args)
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// runLambda builds the handler once and hands invocations to it for the life
// of the execution environment. Only a malformed event fails an invocation;
// lookup and emission failures are recovered inside Handle.
func runLambda() int {
	h, err := command.BuildHandler(ctx, wiringFromEnv())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("handler init err: err=%v", err)
		return 1
	}

	lambda.Start(func(ctx context.Context, raw json.RawMessage) error {
		_, err := h.Handle(ctx, raw)
		return err
	})

	return 0
}

// wiringFromEnv resolves handler settings for the Lambda mode: env vars
// first, then the config file, then built-in defaults. Flags only exist in
// the CLI mode.
func wiringFromEnv() command.Wiring {
	timeoutSec, _ := config.GetInt("lookup-timeout", int(handler.DefaultLookupTimeout/time.Second))

	return command.Wiring{
		Region:        envOr("CREDWATCH_REGION", "region"),
		Attribute:     envOr("CREDWATCH_ATTRIBUTE", "attribute"),
		Secret:        envOr("CREDWATCH_SECRET", "secret"),
		Topic:         envOr("CREDWATCH_TOPIC", "topic"),
		LookupTimeout: time.Duration(timeoutSec) * time.Second,
	}
}

// envOr returns the env value when set, else the config value, else "".
func envOr(envKey, cfgKey string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	v, _ := config.GetString(cfgKey, "")
	return v
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}
