package cmd

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/isometry/msg-app/internal/config"
	"github.com/isometry/msg-app/internal/runtime"
	"github.com/spf13/cobra"
)

func cmdLambda() *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Run as an AWS Lambda function",
		RunE:  runLambda,
	}
}

func runLambda(cmd *cobra.Command, args []string) error {
	return chainCommands(cmd, args, setupLogger(config.ModeLambda), func(cmd *cobra.Command, _ []string) error {
		hdl, err := newMessageHandler(cmd.Context())
		if err != nil {
			return err
		}
		rt := runtime.NewRuntime(hdl,
			runtime.WithPayloadType(config.Lambda.PayloadType),
			runtime.WithLogger(logger.With("component", "runtime")))

		logger.Info("lambda starting...", "payloadType", config.Lambda.PayloadType)
		lambda.StartWithOptions(rt.Lambda,
			lambda.WithContext(cmd.Context()))
		return nil
	})
}
