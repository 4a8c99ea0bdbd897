package app

import (
	"bitwise74/task-api/aws"
	"bitwise74/task-api/db"
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/mailer"
	"bitwise74/task-api/internal/storage"
	"bitwise74/task-api/pkg/middleware"
	"context"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewDeps opens every backing service described by the loaded config. The
// returned func releases what needs releasing and must be called on shutdown.
func NewDeps(ctx context.Context) (*internal.Deps, func(), error) {
	driver, dsn := viper.GetString("db.driver"), viper.GetString("db.dsn")
	if err := db.EnsureMounted(driver, dsn); err != nil {
		return nil, nil, err
	}

	conn, err := db.New(driver, dsn, viper.GetBool("automigrate"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	st, err := newStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	var transport mailer.Transport = mailer.NewSMTP(mailer.SMTPConfig{
		Host:     viper.GetString("mail.host"),
		Port:     viper.GetInt("mail.port"),
		Username: viper.GetString("mail.username"),
		Password: viper.GetString("mail.password"),
	})

	cleanup := func() {}

	if viper.GetBool("mail.async") {
		q := mailer.NewQueue(transport, viper.GetInt("mail.workers"), viper.GetInt("mail.queue_size"))
		q.StartWorkerPool()

		transport = q
		cleanup = q.Close
	}

	m, err := mailer.New(transport, viper.GetString("mail.from_address"), viper.GetString("mail.from_name"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load mail views, %w", err)
	}

	d := internal.NewDeps(conn, st, m)
	d.JWTSecret = viper.GetString("security.jwt_secret")
	d.MaxUploadSize = viper.GetInt64("upload.max_size")

	return d, cleanup, nil
}

func newStorage(ctx context.Context) (storage.Storage, error) {
	switch t := viper.GetString("storage.type"); t {
	case "s3":
		c, err := aws.NewS3(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
		}

		zap.L().Debug("Using S3 storage", zap.String("bucket", *c.Bucket))
		return storage.NewS3(c), nil
	case "local":
		return storage.NewLocal(viper.GetString("storage.path"))
	default:
		return nil, fmt.Errorf("unknown storage type %q", t)
	}
}

// RouterConfigFromViper reads the router settings from the loaded config
func RouterConfigFromViper() RouterConfig {
	return RouterConfig{
		CORSOrigins: viper.GetStringSlice("host.cors"),
		RateLimit:   viper.GetInt("security.rate_limit"),
		Turnstile: middleware.TurnstileConfig{
			Enabled: viper.GetBool("turnstile.enabled"),
			Secret:  viper.GetString("turnstile.secret_token"),
		},
	}
}
