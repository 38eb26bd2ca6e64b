package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			bucketsOpt := WithCaloriesBuckets([]float64{10, 100, 1000})
			enabledOpt := WithEnabled(false)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(bucketsOpt, ShouldNotBeNil)
				So(enabledOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithCaloriesBuckets([]float64{10, 100, 1000}),
				WithEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the package-level recording helpers", t, func() {
		Convey("When recording session metrics", func() {
			Convey("Then processed sessions should not panic", func() {
				So(func() {
					RecordSessionProcessed("RUN")
					RecordSessionProcessed("SWM")
					RecordSessionProcessed("WLK")
				}, ShouldNotPanic)
			})

			Convey("And dispatch errors should not panic", func() {
				So(func() {
					RecordDispatchError()
					RecordDispatchError()
				}, ShouldNotPanic)
			})

			Convey("And calorie observations should not panic", func() {
				So(func() {
					ObserveCalories(336)
					ObserveCalories(797.805)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording is disabled", func() {
			SetEnabled(false)
			defer SetEnabled(true)

			Convey("Then the helpers should still be safe to call", func() {
				So(func() {
					RecordSessionProcessed("RUN")
					RecordDispatchError()
					ObserveCalories(1)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global registry", t, func() {
		Convey("Then it should be exposed for embedders", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
