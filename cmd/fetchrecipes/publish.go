package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"fetchrecipes/fixtures"
	"fetchrecipes/networking"
)

func publishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Upload the bundled fixtures to the configured S3 bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.S3.Bucket == "" {
				return fmt.Errorf("s3.bucket is required to publish")
			}
			logger, _, err := newLogger(cfg, false)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			s3t, err := a.s3Transport(cmd.Context())
			if err != nil {
				return err
			}
			for _, rt := range []networking.RequestType{networking.AllRecipes, networking.EmptyRecipes, networking.MalformedRecipes} {
				data, err := fixtures.FS.ReadFile(networking.FixtureName(rt))
				if err != nil {
					return err
				}
				key := networking.S3Key(cfg.S3.Prefix, rt)
				if err := s3t.Put(cmd.Context(), cfg.S3.Bucket, key, bytes.NewReader(data)); err != nil {
					return err
				}
				logger.Info("fixture published", "bucket", cfg.S3.Bucket, "key", key)
			}
			return nil
		},
	}
}
