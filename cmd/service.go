package cmd

import (
	"net"
	"net/http"

	"github.com/isometry/msg-app/internal/config"
	"github.com/isometry/msg-app/internal/runtime"
	"github.com/spf13/cobra"
)

func cmdService() *cobra.Command {
	return &cobra.Command{
		Use:     "service",
		Aliases: []string{"s", "serve", "standalone", "server"},
		Short:   "Run as a standalone HTTP service",
		RunE:    runService,
	}
}

func runService(cmd *cobra.Command, args []string) error {
	return chainCommands(cmd, args, setupLogger(config.ModeService), func(cmd *cobra.Command, _ []string) error {
		hdl, err := newMessageHandler(cmd.Context())
		if err != nil {
			return err
		}

		logger.Debug("creating runtime...")
		rt := runtime.NewRuntime(hdl,
			runtime.WithPrincipalHeader(config.Service.PrincipalHeader),
			runtime.WithLogger(logger.With("component", "runtime")))

		logger.Debug("creating HTTP server...")
		h := http.NewServeMux()
		h.HandleFunc(config.Service.Path, rt.ServeHTTP)

		s := &http.Server{
			Handler:      h,
			Addr:         net.JoinHostPort(config.Service.Addr, config.Service.Port),
			WriteTimeout: config.Service.Timeout,
			ReadTimeout:  config.Service.Timeout,
			IdleTimeout:  config.Service.Timeout,
		}

		logger.Info("serving...", "address", s.Addr, "path", config.Service.Path, "timeout", config.Service.Timeout.String())
		return s.ListenAndServe()
	})
}
