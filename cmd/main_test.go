package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/okian/stride/internal/app"
	"github.com/okian/stride/internal/config"
	"github.com/okian/stride/internal/samples"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("STRIDE_LOG_LEVEL", "debug")
			defer func() {
				_ = os.Unsetenv("STRIDE_LOG_LEVEL")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then the service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And the full sample run should produce three report lines", func() {
				var buf bytes.Buffer
				svc := app.New(app.WithOutput(&buf))
				err := svc.Process(context.Background(), samples.Packages())
				convey.So(err, convey.ShouldBeNil)
				convey.So(bytes.Count(buf.Bytes(), []byte("\n")), convey.ShouldEqual, 3)
			})
		})
	})
}
