package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nelsam/reqinfo"
)

// Summary is everything reqinfo can say about one request.
type Summary struct {
	Method   string `json:"method" yaml:"method"`
	URI      string `json:"uri,omitempty" yaml:"uri,omitempty"`
	URIError string `json:"uri_error,omitempty" yaml:"uri_error,omitempty"`
	Ajax     bool   `json:"ajax" yaml:"ajax"`
	Get      bool   `json:"get" yaml:"get"`
	Head     bool   `json:"head" yaml:"head"`
	Post     bool   `json:"post" yaml:"post"`
	Put      bool   `json:"put" yaml:"put"`
	Patch    bool   `json:"patch" yaml:"patch"`
	Delete   bool   `json:"delete" yaml:"delete"`
	Options  bool   `json:"options" yaml:"options"`
	EnvDev   bool   `json:"env_dev" yaml:"env_dev"`
	EnvProd  bool   `json:"env_prod" yaml:"env_prod"`
}

func summarize(info reqinfo.Info) Summary {
	s := Summary{
		Method:  info.Method(),
		Ajax:    info.IsAjax(),
		Get:     info.IsGet(),
		Head:    info.IsHead(),
		Post:    info.IsPost(),
		Put:     info.IsPut(),
		Patch:   info.IsPatch(),
		Delete:  info.IsDelete(),
		Options: info.IsOptions(),
		EnvDev:  info.IsEnvDev(),
		EnvProd: info.IsEnvProd(),
	}
	uri, err := info.RequestURI()
	if err != nil {
		s.URIError = err.Error()
	} else {
		s.URI = uri
	}
	return s
}

func newRootCmd(environ func() []string) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("reqinfo")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "reqinfo",
		Short:         "Show how the current request environment is classified",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(v.GetBool("verbose"))
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			env := reqinfo.FromEnviron(environ())
			log.Debug("loaded request environment", zap.Int("vars", env.Len()))

			request := reqinfo.New(env,
				reqinfo.WithEnvironmentKey(v.GetString("env-key")),
				reqinfo.WithLogger(log))
			return write(cmd.OutOrStdout(), v.GetString("format"), summarize(request))
		},
	}

	flags := cmd.Flags()
	flags.String("env-key", reqinfo.DefaultEnvironmentKey, "Variable holding the deployment environment name")
	flags.StringP("format", "f", "json", "Output format (json or yaml)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	_ = v.BindPFlags(flags)

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func write(w io.Writer, format string, s Summary) error {
	contentType, ok := formats[format]
	if !ok {
		return fmt.Errorf("unknown output format %q", format)
	}
	codec, err := Codecs().GetCodec(contentType)
	if err != nil {
		return fmt.Errorf("no codec for %s: %w", contentType, err)
	}
	data, err := codec.Marshal(s, nil)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}
