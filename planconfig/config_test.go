package planconfig

import (
	"testing"

	"go.viam.com/test"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	test.That(t, cfg.Size.Forward, test.ShouldAlmostEqual, 0.4)
	test.That(t, cfg.Size.Backward, test.ShouldAlmostEqual, -0.6)
	test.That(t, cfg.Size.Width, test.ShouldAlmostEqual, 0.5)
	test.That(t, cfg.Course.Penalty.Backwards, test.ShouldAlmostEqual, 2.5)
	test.That(t, cfg.Course.Penalty.Turn, test.ShouldAlmostEqual, 5.0)
	test.That(t, cfg.Course.Turning.Straight, test.ShouldAlmostEqual, 0.7)
}

func TestFromJSONPartialOverride(t *testing.T) {
	cfg, err := FromJSON([]byte(`{"course":{"penalty":{"turn": 9.5}}}`))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Course.Penalty.Turn, test.ShouldAlmostEqual, 9.5)
	// Untouched fields keep their defaults.
	test.That(t, cfg.Course.Penalty.Backwards, test.ShouldAlmostEqual, 2.5)
	test.That(t, cfg.Size.Forward, test.ShouldAlmostEqual, 0.4)
}
