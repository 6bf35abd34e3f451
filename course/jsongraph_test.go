package course

import (
	"testing"

	"go.viam.com/test"
)

func TestLoadGraphJSON(t *testing.T) {
	data := []byte(`{
		"segments": [
			{"start": [0, 0], "end": [5, 0]},
			{"start": [5, 1], "end": [10, 1]}
		],
		"transitions": [
			{"owner": 0, "source": 0, "target": 1, "list": "forward",
			 "path": [[5, 0], [5, 0.5], [5, 1]]}
		]
	}`)

	graph, err := LoadGraphJSON(data)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(graph.Segments()), test.ShouldEqual, 2)

	s1 := graph.Segments()[0]
	test.That(t, len(s1.ForwardTransitions()), test.ShouldEqual, 1)
	test.That(t, s1.ForwardTransitions()[0].ArcLength(), test.ShouldAlmostEqual, 1.0)
}

func TestLoadGraphJSONRejectsBadList(t *testing.T) {
	data := []byte(`{
		"segments": [{"start": [0,0], "end": [1,0]}, {"start": [1,0], "end": [2,0]}],
		"transitions": [{"owner": 0, "source": 0, "target": 1, "list": "sideways", "path": [[1,0],[2,0]]}]
	}`)

	_, err := LoadGraphJSON(data)
	test.That(t, err, test.ShouldNotBeNil)
}
