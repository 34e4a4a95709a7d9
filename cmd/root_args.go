package cmd

import (
	"time"

	"github.com/isometry/msg-app/internal/config"
	"github.com/isometry/msg-app/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.Global.Mode: {
		Name:        "mode",
		Description: "The application runtime mode. Possible values are 'lambda' and 'service'",
		Short:       helpers.Ptr("m"),
	},
	&config.Lambda.PayloadType: {
		Name:        "lambda-payload-type",
		Description: "The payload type to expect when running in Lambda mode. Supported values are 'api-gateway-v1', 'api-gateway-v2' and 'lambda-url'",
	},
	&config.Service.Addr: {
		Name:        "service-host-addr",
		Description: "The address to serve the service on (default all interfaces in dual-stack mode)",
		Short:       helpers.Ptr("H"),
	},
	&config.Service.Port: {
		Name:        "service-host-port",
		Description: "The port to serve the service on",
		Short:       helpers.Ptr("p"),
	},
	&config.Service.Path: {
		Name:        "service-host-path",
		Description: "The path to serve the service on",
		Short:       helpers.Ptr("P"),
	},
	&config.Service.PrincipalHeader: {
		Name:        "service-principal-header",
		Description: "The request header carrying the caller identity in service mode",
	},
	&config.Store.Backend: {
		Name:        "store-backend",
		Description: "The message store. Supported values are 'memory' and 's3'",
		Short:       helpers.Ptr("s"),
	},
	&config.Store.BucketName: {
		Name:        "store-bucket",
		Description: "The S3 bucket messages are written to",
		Env:         helpers.Ptr("MESSAGES_S3_BUCKET"),
	},
	&config.Store.BucketSSMKey: {
		Name:        "store-bucket-ssm-key",
		Description: "The SSM parameter holding the S3 bucket name. Takes precedence over --store-bucket",
	},
	&config.Store.Prefix: {
		Name:        "store-prefix",
		Description: "The S3 key prefix for stored messages",
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
}

var envMapCount = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default WarnLevel)",
		Short:       helpers.Ptr("v"),
	},
}

var envMapDuration = map[*time.Duration]boundEnvVar[time.Duration]{
	&config.Service.Timeout: {
		Name:        "service-io-timeout",
		Description: "The timeout for I/O operations",
		Short:       helpers.Ptr("t"),
	},
}
