package frame_test

import (
	"testing"
	"time"

	collisionmocks "github.com/cbodonnell/boxbench/mocks/github.com/cbodonnell/boxbench/pkg/collision"
	mocks "github.com/cbodonnell/boxbench/mocks/github.com/cbodonnell/boxbench/pkg/frame"
	"github.com/cbodonnell/boxbench/pkg/collision"
	"github.com/cbodonnell/boxbench/pkg/frame"
	"github.com/cbodonnell/boxbench/pkg/geometry"
	"github.com/cbodonnell/boxbench/pkg/grid"
	"github.com/cbodonnell/boxbench/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T, input frame.InputSource, evaluator collision.Evaluator) *frame.Driver {
	boxes, err := grid.Generate(grid.Layout{
		Count:       8000,
		BoxSize:     geometry.IntPoint{X: 2, Y: 2},
		Padding:     geometry.IntPoint{X: 4, Y: 4},
		BoundsWidth: 640,
	})
	require.NoError(t, err)

	return frame.NewDriver(frame.NewDriverOptions{
		Input:     input,
		Evaluator: evaluator,
		State: session.NewState(session.NewStateOptions{
			Boxes:     boxes,
			QuerySize: geometry.IntPoint{X: 2, Y: 2},
		}),
	})
}

func TestDriver_Tick(t *testing.T) {
	tests := []struct {
		name   string
		inputs []frame.Input
		want   []frame.View
	}{
		{
			name:   "starts at origin on the first box",
			inputs: []frame.Input{{}},
			want: []frame.View{
				{
					Collided: true,
					Mode:     session.ModeNormal,
					Query:    geometry.Rect{Size: geometry.IntPoint{X: 2, Y: 2}},
				},
			},
		},
		{
			name: "pointer moves into a gap and the position persists",
			inputs: []frame.Input{
				{Pointer: geometry.IntPoint{X: 3, Y: 3}, PointerMoved: true},
				{Pointer: geometry.IntPoint{X: 0, Y: 0}},
			},
			want: []frame.View{
				{
					Collided: false,
					Mode:     session.ModeNormal,
					Query:    geometry.Rect{Origin: geometry.IntPoint{X: 3, Y: 3}, Size: geometry.IntPoint{X: 2, Y: 2}},
				},
				{
					Collided: false,
					Mode:     session.ModeNormal,
					Query:    geometry.Rect{Origin: geometry.IntPoint{X: 3, Y: 3}, Size: geometry.IntPoint{X: 2, Y: 2}},
				},
			},
		},
		{
			name: "two toggles return to normal",
			inputs: []frame.Input{
				{ToggleBoxes: true, Pointer: geometry.IntPoint{X: 7, Y: 7}, PointerMoved: true},
				{ToggleBoxes: true},
			},
			want: []frame.View{
				{
					Collided:     true,
					DisplayBoxes: true,
					Mode:         session.ModeDisplayBoxes,
					Query:        geometry.Rect{Origin: geometry.IntPoint{X: 7, Y: 7}, Size: geometry.IntPoint{X: 2, Y: 2}},
				},
				{
					Collided: true,
					Mode:     session.ModeNormal,
					Query:    geometry.Rect{Origin: geometry.IntPoint{X: 7, Y: 7}, Size: geometry.IntPoint{X: 2, Y: 2}},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockInput := mocks.NewInputSource(t)
			for _, input := range tt.inputs {
				mockInput.EXPECT().Poll().Return(input).Once()
			}
			driver := newTestDriver(t, mockInput, collision.NewScanEvaluator(collision.NewScanEvaluatorOptions{}))

			for i, want := range tt.want {
				got, err := driver.Tick()
				require.NoError(t, err)

				assert.Equal(t, want.Collided, got.Collided, "frame %d", i)
				assert.Equal(t, want.DisplayBoxes, got.DisplayBoxes, "frame %d", i)
				assert.Equal(t, want.Mode, got.Mode, "frame %d", i)
				assert.Equal(t, want.Query, got.Query, "frame %d", i)
				if got.DisplayBoxes {
					assert.Len(t, got.Boxes, 8000, "frame %d", i)
				} else {
					assert.Nil(t, got.Boxes, "frame %d", i)
				}
			}

			assert.Equal(t, len(tt.want), driver.Stats().Frames)
			assert.Equal(t, 8000*len(tt.want), driver.Stats().Tests)
		})
	}
}

func TestDriver_Tick_quit(t *testing.T) {
	mockInput := mocks.NewInputSource(t)
	mockEvaluator := collisionmocks.NewEvaluator(t)
	mockInput.EXPECT().Poll().Return(frame.Input{Quit: true, ToggleBoxes: true}).Once()

	driver := newTestDriver(t, mockInput, mockEvaluator)
	_, err := driver.Tick()
	assert.ErrorIs(t, err, frame.ErrQuit)
	assert.Equal(t, session.ModeNormal, driver.State().Mode())
	mockEvaluator.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything)
}

func TestDriver_Tick_evaluatesQueryBox(t *testing.T) {
	mockInput := mocks.NewInputSource(t)
	mockEvaluator := collisionmocks.NewEvaluator(t)

	wantQuery := geometry.Rect{Origin: geometry.IntPoint{X: 100, Y: 50}, Size: geometry.IntPoint{X: 2, Y: 2}}
	mockInput.EXPECT().Poll().Return(frame.Input{Pointer: wantQuery.Origin, PointerMoved: true}).Once()
	mockEvaluator.EXPECT().Evaluate(wantQuery, mock.Anything).
		Return(collision.Result{Collided: true, Elapsed: 2 * time.Millisecond, Tests: 8000}).Once()

	driver := newTestDriver(t, mockInput, mockEvaluator)
	view, err := driver.Tick()
	require.NoError(t, err)

	assert.True(t, view.Collided)
	assert.Equal(t, 2*time.Millisecond, view.Elapsed)
	assert.Equal(t, view, driver.View())
	assert.True(t, driver.State().LastResult().Collided)
}

func TestDriver_Tick_sweep(t *testing.T) {
	source := frame.NewSweepSource(frame.NewSweepSourceOptions{
		Bounds: geometry.IntPoint{X: 640, Y: 480},
		Step:   geometry.IntPoint{X: 3, Y: 3},
		Frames: 300,
	})
	driver := newTestDriver(t, source, collision.NewParallelEvaluator(collision.NewParallelEvaluatorOptions{Workers: 4}))

	frames := 0
	for {
		_, err := driver.Tick()
		if err != nil {
			require.ErrorIs(t, err, frame.ErrQuit)
			break
		}
		frames++
	}

	stats := driver.Stats()
	assert.Equal(t, 300, frames)
	assert.Equal(t, 300, stats.Frames)
	assert.Equal(t, 300*8000, stats.Tests)
	// (0,0) hits the first box; (3,0) sits in the padding.
	assert.Greater(t, stats.Collisions, 0)
	assert.Less(t, stats.Collisions, 300)
}
