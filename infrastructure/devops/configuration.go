package devops

import (
	"context"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// AppConfig is the service configuration, stored as YAML in a single SSM
// parameter so lambdas and the web service share one source.
type AppConfig struct {
	DSN            string `yaml:"dsn"`
	MaxConnections int    `yaml:"max_connections"`
	ExportBucket   string `yaml:"export_bucket"`
	SigningSecret  string `yaml:"signing_secret"` // base64
}

var (
	once    sync.Once
	appCfg  *AppConfig
	loadErr error
)

func LoadAppConfig(ctx context.Context) (*AppConfig, error) {
	once.Do(func() {
		paramName := "shiftbook-config"

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(cfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		var parsed AppConfig
		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		if parsed.MaxConnections == 0 {
			parsed.MaxConnections = 10
		}
		appCfg = &parsed
	})

	return appCfg, loadErr
}
