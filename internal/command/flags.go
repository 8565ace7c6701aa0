// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/credwatch/credwatch/internal/handler"
)

// NewAttributeFlag constructs the flag naming the metadata leaf looked up
// under /{identity}/. params[0] is the namespace, params[1] the config file.
func NewAttributeFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "attribute",
		Usage: "metadata attribute resolved per identity",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CREDWATCH_ATTRIBUTE"),
		),
		Value: handler.DefaultAttribute,
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewSecretFlag constructs the flag naming the shared credential in the
// credential store.
func NewSecretFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "secret",
		Usage: "logical name of the shared credential",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CREDWATCH_SECRET"),
		),
		Value: handler.DefaultSecret,
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewTopicFlag constructs the flag for the SNS topic ARN. Empty means the
// record goes to the structured log instead.
func NewTopicFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "topic",
		Usage: "SNS topic ARN to publish notifications to (empty = log sink)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CREDWATCH_TOPIC"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewRegionFlag constructs the AWS region override flag.
func NewRegionFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region. Overrides the ambient config chain",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CREDWATCH_REGION"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewProfileFlag constructs the AWS shared-config profile flag.
func NewProfileFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS shared-config profile. Overrides AWS_PROFILE",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CREDWATCH_PROFILE"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
